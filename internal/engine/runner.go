/*
PURPOSE:
  High-level runner that orchestrates the benchmarking process.
  Loops through Programs -> Runs, timing each subprocess and collecting
  the fields it prints.

REQUIREMENTS:
  User-specified:
  - Run every program N times, strictly one subprocess at a time.
  - Time each run with a monotonic clock around the subprocess only.
  - Optionally parse "label: value" lines from captured stdout.

  Implementation-discovered:
  - A child exiting non-zero is still a completed run; only failures to
    launch abort the benchmark.
  - Results are returned, not printed, so nothing is reported when a later
    program fails.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/fields, internal/stats, internal/output (logging)

ERROR HANDLING:
  - Launch failures (missing executable, empty command) are returned
    wrapped; callers abort the whole invocation.

IMPLEMENTATION RULES:
  - No goroutines. Order of execution is program order, then run order.

USAGE:
  reports, err := engine.Run(ctx, cfg, programs)

RELATED FILES:
  - internal/fields/fields.go
  - internal/output/report.go
*/

package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/daryltucker/bench-runner/internal/config"
	"github.com/daryltucker/bench-runner/internal/fields"
	"github.com/daryltucker/bench-runner/internal/model"
	"github.com/daryltucker/bench-runner/internal/output"
	"github.com/daryltucker/bench-runner/internal/stats"
)

// ErrEmptyCommand is returned when a program has no tokens, e.g. after a
// leading or doubled separator.
var ErrEmptyCommand = errors.New("empty command")

// Engine executes benchmarked programs.
type Engine struct {
	Config *config.Config
	// Stdout receives child output when it is not captured.
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a new Engine bound to the process's stdout and stderr.
func New(cfg *config.Config) *Engine {
	return &Engine{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// RunOnce executes spec a single time. With capture set, the child's stdout
// is collected and, if field parsing is enabled, parsed into the sample.
func (e *Engine) RunOnce(ctx context.Context, spec model.ProgramSpec, capture bool) (model.RunSample, error) {
	if len(spec) == 0 {
		return model.RunSample{}, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, spec[0], spec[1:]...)
	var stdout bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
	} else {
		cmd.Stdout = e.Stdout
	}
	cmd.Stderr = e.Stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	sample := model.RunSample{Elapsed: elapsed}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return sample, ctxErr
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return sample, fmt.Errorf("failed to run '%s': %w", spec.CommandLine(), err)
		}
		sample.ExitCode = exitErr.ExitCode()
		output.Logger.Debug("Program exited with non-zero status", "cmd", spec.CommandLine(), "exit_code", sample.ExitCode)
	}

	if capture && e.Config.Fields {
		sample.Fields = fields.Extract(stdout.String())
	}
	return sample, nil
}

// RunProgram executes spec Config.Runs times (at least once) and aggregates
// timing and field statistics.
func (e *Engine) RunProgram(ctx context.Context, spec model.ProgramSpec) (model.ProgramReport, error) {
	n := config.CoerceRuns(e.Config.Runs)
	report := model.ProgramReport{Program: spec, Runs: n}

	samples := make([]model.RunSample, 0, n)
	perRun := make([]map[string]float64, 0, n)
	for i := 0; i < n; i++ {
		sample, err := e.RunOnce(ctx, spec, true)
		if err != nil {
			return report, err
		}
		output.Logger.Debug("Run complete",
			"cmd", spec.CommandLine(),
			"run", i+1,
			"elapsed", sample.Elapsed,
			"fields", len(sample.Fields),
		)
		samples = append(samples, sample)
		perRun = append(perRun, sample.Fields)
	}

	runtime, err := stats.Summarize(model.Seconds(samples))
	if err != nil {
		return report, fmt.Errorf("runtime statistics for '%s': %w", spec.CommandLine(), err)
	}
	report.Runtime = runtime

	if !e.Config.Fields {
		return report, nil
	}
	series := fields.Intersect(perRun)
	for _, name := range series.Names {
		values := series.Values[name]
		if len(values) == 0 {
			continue
		}
		summary, err := stats.Summarize(values)
		if err != nil {
			return report, fmt.Errorf("field %q statistics: %w", name, err)
		}
		report.Fields = append(report.Fields, model.FieldSummary{Name: name, Summary: summary})
	}
	return report, nil
}

// RunSimple executes spec n times with the child's output passed through
// and summarizes the elapsed seconds.
func (e *Engine) RunSimple(ctx context.Context, spec model.ProgramSpec, n int) (stats.Summary, error) {
	times := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		sample, err := e.RunOnce(ctx, spec, false)
		if err != nil {
			return stats.Summary{}, err
		}
		output.Logger.Debug("Run complete", "cmd", spec.CommandLine(), "run", i+1, "elapsed", sample.Elapsed)
		times = append(times, sample.Elapsed.Seconds())
	}
	return stats.Summarize(times)
}

// Run executes the full benchmark suite and returns one report per program.
// The first failing program aborts the suite and no reports are returned.
func Run(ctx context.Context, cfg *config.Config, programs []model.ProgramSpec) ([]model.ProgramReport, error) {
	e := New(cfg)
	return e.RunAll(ctx, programs)
}

// RunAll is Run on an existing Engine.
func (e *Engine) RunAll(ctx context.Context, programs []model.ProgramSpec) ([]model.ProgramReport, error) {
	reports := make([]model.ProgramReport, 0, len(programs))
	for i, spec := range programs {
		output.Logger.Info("Benchmarking program", "index", i+1, "cmd", spec.CommandLine(), "runs", config.CoerceRuns(e.Config.Runs))
		report, err := e.RunProgram(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("program %d: %w", i+1, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

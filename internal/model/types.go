/*
PURPOSE:
  Defines the core data structures used throughout Bench Runner.
  These models represent benchmarked programs, single runs and the
  aggregated per-program report.

REQUIREMENTS:
  User-specified:
  - Record elapsed wall-clock time per run.
  - Record numeric "label: value" fields parsed from a run's stdout.

  Implementation-discovered:
  - Field order must be deterministic for the report, so FieldSeries keeps
    an explicit Names slice next to the value map.

ARCHITECTURE INTEGRATION:
  - Used by: internal/program, internal/engine, internal/fields, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Use time.Duration for elapsed time; convert to seconds only for stats.

USAGE:
  spec := model.ProgramSpec{"echo", "hi"}

RELATED FILES:
  - internal/output/report.go

MAINTENANCE:
  - Update when adding new per-run measurements.
*/

package model

import (
	"strings"
	"time"

	"github.com/daryltucker/bench-runner/internal/stats"
)

// ProgramSpec is the token list of one benchmarked command.
type ProgramSpec []string

// CommandLine rejoins the tokens with single spaces.
func (p ProgramSpec) CommandLine() string {
	return strings.Join(p, " ")
}

// RunSample is the outcome of a single execution of a program.
type RunSample struct {
	Elapsed time.Duration
	// Fields is nil when field parsing is disabled.
	Fields map[string]float64
	// ExitCode of the child; non-zero exits are still timed.
	ExitCode int
}

// FieldSeries holds, for one program, the values of every field that was
// present in all of its runs. Names preserves first-seen order.
type FieldSeries struct {
	Names  []string
	Values map[string][]float64
}

// Len returns the number of surviving fields.
func (f FieldSeries) Len() int {
	return len(f.Names)
}

// FieldSummary is the aggregate of one named field.
type FieldSummary struct {
	Name    string
	Summary stats.Summary
}

// ProgramReport is the aggregated result for one program.
type ProgramReport struct {
	Program ProgramSpec
	Runs    int
	Runtime stats.Summary
	// Fields is empty when parsing is disabled or no field survived.
	Fields []FieldSummary
}

// Seconds converts the elapsed times of samples to float seconds.
func Seconds(samples []RunSample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Elapsed.Seconds()
	}
	return out
}

/*
PURPOSE:
  Defines the root Cobra command for the bench-runner CLI (the extended
  runner). Handles flags, config overrides and report output.

REQUIREMENTS:
  User-specified:
  - --no-fields disables output field parsing.
  - --n sets runs per program; values <= 1 mean one run.
  - Remaining tokens are one or more commands separated by "...".

  Implementation-discovered:
  - Flag parsing stops at the first positional so the benchmarked
    command's own flags pass through untouched.
  - The report is written only after every program finished.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/bench-runner/main.go
  - Calls: internal/program.Group, internal/engine, internal/output

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

USAGE:
  bench-runner --n 5 ./bench_words ... ./bench_sentence

RELATED FILES:
  - internal/cli/simple.go
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/bench-runner/internal/config"
	"github.com/daryltucker/bench-runner/internal/engine"
	"github.com/daryltucker/bench-runner/internal/output"
	"github.com/daryltucker/bench-runner/internal/program"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type rootOptions struct {
	cfgFile  string
	runs     int
	noFields bool
	verbose  bool
	noColor  bool
}

// NewRootCmd builds the bench-runner command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "bench-runner [flags] <command> [args...] [... <command> [args...]]",
		Short: "Run programs repeatedly and report timing and output field statistics",
		Long: `Runs each program N times, one after the other, and reports avg/min/max/median
of the wall-clock time. Lines of the form "label: number" printed on stdout are
collected as fields; fields that appear in every run are summarized too.

Separate multiple programs with a literal "..." token.`,
		Example: `  # Five runs of one program
  bench-runner --n 5 ./bench_words 100000

  # Compare two programs, timing only
  bench-runner --n 10 --no-fields ./bench_words ... ./bench_words_std_unordered_map`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Load Config
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}

			// 2. Overrides
			if cmd.Flags().Changed("n") {
				cfg.Runs = config.CoerceRuns(opts.runs)
			}
			if opts.noFields {
				cfg.Fields = false
			}
			cfg.Verbose = cfg.Verbose || opts.verbose
			cfg.NoColor = cfg.NoColor || opts.noColor
			output.Configure(cfg.Verbose, cfg.NoColor)
			if cfg.NoColor {
				output.DisableColor()
			}

			// 3. Execution
			programs := program.Group(args)
			e := engine.New(cfg)
			e.Stderr = cmd.ErrOrStderr()
			reports, err := e.RunAll(cmd.Context(), programs)
			if err != nil {
				return err
			}
			return output.WriteReport(cmd.OutOrStdout(), reports)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&opts.cfgFile, "config", "", "YAML config file (no file is read unless given)")
	cmd.Flags().IntVar(&opts.runs, "n", 1, "how many times each program is run")
	cmd.Flags().BoolVar(&opts.noFields, "no-fields", false, "do not parse \"label: number\" fields from program output")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every run to stderr")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	return cmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

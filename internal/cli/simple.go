package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/bench-runner/internal/config"
	"github.com/daryltucker/bench-runner/internal/engine"
	"github.com/daryltucker/bench-runner/internal/model"
	"github.com/daryltucker/bench-runner/internal/output"
)

// NewSimpleCmd builds the timeit command: a run count followed by a single
// command whose output is passed through.
func NewSimpleCmd() *cobra.Command {
	var verbose, noColor bool

	cmd := &cobra.Command{
		Use:   "timeit [runs] <command> [args...]",
		Short: "Time a command over several runs",
		Long: `Runs the command the given number of times (default 10) and prints the
avg/min/max/median wall-clock time. The first argument is always taken as the
run count; if it is not a number the default is used.`,
		Example:       `  timeit 20 ./gen_primes 1000000`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			output.Configure(verbose, noColor)
			if noColor {
				output.DisableColor()
			}

			runs, ok := config.ParseSimpleRuns(firstArg(args))
			if len(args) > 0 && !ok {
				output.Logger.Warn("Run count is not a number, using default", "arg", args[0], "runs", runs)
			}
			var spec model.ProgramSpec
			if len(args) > 1 {
				spec = model.ProgramSpec(args[1:])
			}

			e := engine.New(config.DefaultConfig())
			e.Stdout = cmd.OutOrStdout()
			e.Stderr = cmd.ErrOrStderr()
			summary, err := e.RunSimple(cmd.Context(), spec, runs)
			if err != nil {
				return err
			}
			return output.WriteSimple(cmd.OutOrStdout(), runs, summary)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every run to stderr")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured log output")

	return cmd
}

func firstArg(args []string) (string, bool) {
	if len(args) == 0 {
		return "", false
	}
	return args[0], true
}

// ExecuteSimple executes the timeit command.
func ExecuteSimple() error {
	return NewSimpleCmd().Execute()
}

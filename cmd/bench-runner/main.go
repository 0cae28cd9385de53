/*
PURPOSE:
  Entry point for bench-runner, the multi-program benchmark harness.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point for the extended runner.
  - Launch failures abort the invocation with a non-zero exit.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o bench-runner ./cmd/bench-runner
  ./bench-runner --n 5 <command> [... <command>]
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/bench-runner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Command timeit runs one command a number of times and prints timing
// statistics.
package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/bench-runner/internal/cli"
)

func main() {
	if err := cli.ExecuteSimple(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package program turns the positional command-line tokens into the list
// of benchmarked programs.
package program

import (
	"strings"

	"github.com/daryltucker/bench-runner/internal/model"
)

// Separator closes the current program and starts a new one.
const Separator = "..."

// grouper is the reducer state: the tokens of the program being built and
// the programs already closed.
type grouper struct {
	current []string
	done    []model.ProgramSpec
}

func (g grouper) step(token string) grouper {
	if token == Separator {
		// Closing with an empty buffer still yields a program; the engine
		// rejects it when it is run.
		g.done = append(g.done, model.ProgramSpec(g.current))
		g.current = nil
		return g
	}
	g.current = append(g.current, strings.Fields(token)...)
	return g
}

func (g grouper) finish() []model.ProgramSpec {
	if len(g.current) > 0 {
		g.done = append(g.done, model.ProgramSpec(g.current))
	}
	return g.done
}

// Group splits tokens on Separator. Each token is whitespace-split so a
// quoted "echo hi" contributes two tokens.
func Group(tokens []string) []model.ProgramSpec {
	g := grouper{}
	for _, tok := range tokens {
		g = g.step(tok)
	}
	return g.finish()
}

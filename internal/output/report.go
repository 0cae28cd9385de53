/*
PURPOSE:
  Renders benchmark results as plain text reports.

REQUIREMENTS:
  User-specified:
  - Simple runner: "ran", "avg", "min", "max", "median" lines.
  - Extended runner: per program the command line, run count, a "runtime:"
    block and one block per surviving field, labels avg/min/max/median.

  Implementation-discovered:
  - Numbers always show a fractional part ("10.0") so integral field values
    read the same as the timing values.
  - Colour is applied to headings only and switches off on non-terminals.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: model.ProgramReport, stats.Summary

ERROR HANDLING:
  - Returns the writer's error.

IMPLEMENTATION RULES:
  - Build each block in memory and write it in one call.

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/daryltucker/bench-runner/internal/model"
	"github.com/daryltucker/bench-runner/internal/stats"
)

const (
	blockIndent = "  "
	statsIndent = "      "
)

var (
	cmdColor   = color.New(color.FgCyan, color.Bold)
	fieldColor = color.New(color.FgYellow)
)

// DisableColor turns off colour in every report.
func DisableColor() {
	color.NoColor = true
}

// FormatFloat prints v in shortest round-trip form with at least one
// fractional digit.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func writeSummary(b *strings.Builder, indent string, s stats.Summary) {
	fmt.Fprintf(b, "%savg: %s\n", indent, FormatFloat(s.Mean))
	fmt.Fprintf(b, "%smin: %s\n", indent, FormatFloat(s.Min))
	fmt.Fprintf(b, "%smax: %s\n", indent, FormatFloat(s.Max))
	fmt.Fprintf(b, "%smedian: %s\n", indent, FormatFloat(s.Median))
}

// WriteSimple writes the simple runner's report.
func WriteSimple(w io.Writer, runs int, s stats.Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nran %d times\n", runs)
	writeSummary(&b, "", s)
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteProgram writes one program's block.
func WriteProgram(w io.Writer, r model.ProgramReport) error {
	var b strings.Builder
	b.WriteString(cmdColor.Sprintf("cmd: '%s'", r.Program.CommandLine()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%sran %d times\n", blockIndent, r.Runs)
	fmt.Fprintf(&b, "%sruntime:\n", blockIndent)
	writeSummary(&b, statsIndent, r.Runtime)
	for _, f := range r.Fields {
		fmt.Fprintf(&b, "%s%s\n", blockIndent, fieldColor.Sprintf("\"%s\":", f.Name))
		writeSummary(&b, statsIndent, f.Summary)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReport writes every program's block in order.
func WriteReport(w io.Writer, reports []model.ProgramReport) error {
	for _, r := range reports {
		if err := WriteProgram(w, r); err != nil {
			return err
		}
	}
	return nil
}

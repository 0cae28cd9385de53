/*
PURPOSE:
  Extracts named numeric fields ("label: value") from a program's captured
  standard output and reduces per-run field maps to the fields common to
  every run.

REQUIREMENTS:
  User-specified:
  - "throughput: 123.45" yields throughput -> 123.45.
  - Integer values parse as floats.
  - Later occurrences of a label within one run overwrite earlier ones.
  - Fields missing from any run are dropped for that program.

  Implementation-discovered:
  - The match is a search, not an anchored match: the first hit on a line
    wins and the label is whatever precedes its colon.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: model.FieldSeries

ERROR HANDLING:
  - None. Lines that do not match contribute nothing.

IMPLEMENTATION RULES:
  - Everything here is a pure function of its input.

USAGE:
  perRun := fields.Extract(stdout)
  series := fields.Intersect(allRuns)

RELATED FILES:
  - internal/engine/runner.go
*/

package fields

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/daryltucker/bench-runner/internal/model"
)

var linePattern = regexp.MustCompile(`([^:]+):\s*(\d+(\.\d+)?)`)

// Pair is one parsed label/value occurrence.
type Pair struct {
	Label string
	Value float64
}

// ParseLine returns the first label/value pair found in line.
func ParseLine(line string) (Pair, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil || m[1] == "" || m[2] == "" {
		return Pair{}, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Pair{}, false
	}
	return Pair{Label: m[1], Value: v}, true
}

// Parse scans text line by line and returns every pair in line order.
func Parse(text string) []Pair {
	var pairs []Pair
	for _, line := range strings.Split(text, "\n") {
		if p, ok := ParseLine(line); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

// Fold collapses pairs into a map; the last pair for a label wins.
func Fold(pairs []Pair) map[string]float64 {
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		out[p.Label] = p.Value
	}
	return out
}

// Extract is Fold(Parse(text)).
func Extract(text string) map[string]float64 {
	return Fold(Parse(text))
}

// Intersect keeps the fields present in every run and collects their
// values in run order. Names are sorted.
func Intersect(runs []map[string]float64) model.FieldSeries {
	series := model.FieldSeries{Values: map[string][]float64{}}
	if len(runs) == 0 {
		return series
	}

	common := mapset.NewSetFromMapKeys(runs[0])
	for _, run := range runs[1:] {
		common = common.Intersect(mapset.NewSetFromMapKeys(run))
	}
	if common.Cardinality() == 0 {
		return series
	}

	series.Names = common.ToSlice()
	sort.Strings(series.Names)
	for _, name := range series.Names {
		values := make([]float64, 0, len(runs))
		for _, run := range runs {
			values = append(values, run[name])
		}
		series.Values[name] = values
	}
	return series
}

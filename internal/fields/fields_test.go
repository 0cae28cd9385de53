package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantOK    bool
		wantLabel string
		wantValue float64
	}{
		{name: "decimal", line: "throughput: 123.45", wantOK: true, wantLabel: "throughput", wantValue: 123.45},
		{name: "integer", line: "ratio: 3", wantOK: true, wantLabel: "ratio", wantValue: 3},
		{name: "no whitespace", line: "t:7", wantOK: true, wantLabel: "t", wantValue: 7},
		{name: "trailing unit", line: "elapsed: 1.5s", wantOK: true, wantLabel: "elapsed", wantValue: 1.5},
		{name: "label with spaces", line: "insert time: 0.25", wantOK: true, wantLabel: "insert time", wantValue: 0.25},
		{name: "no colon", line: "no colon here", wantOK: false},
		{name: "non numeric value", line: "status: ok", wantOK: false},
		{name: "empty", line: "", wantOK: false},
		{name: "second colon holds number", line: "a: b: 5", wantOK: true, wantLabel: " b", wantValue: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantLabel, p.Label)
			assert.Equal(t, tt.wantValue, p.Value)
		})
	}
}

func TestParse_KeepsLineOrder(t *testing.T) {
	out := "header\nfirst: 1\nnoise\nsecond: 2.5\nfirst: 3\n"
	pairs := Parse(out)
	assert.Equal(t, []Pair{
		{Label: "first", Value: 1},
		{Label: "second", Value: 2.5},
		{Label: "first", Value: 3},
	}, pairs)
}

func TestFold_LastWins(t *testing.T) {
	got := Fold([]Pair{{"a", 1}, {"b", 2}, {"a", 9}})
	assert.Equal(t, map[string]float64{"a": 9, "b": 2}, got)
}

func TestExtract_NoMatches(t *testing.T) {
	assert.Empty(t, Extract("hello\nworld\n"))
}

func TestIntersect(t *testing.T) {
	t.Run("drops fields missing from any run", func(t *testing.T) {
		series := Intersect([]map[string]float64{
			{"a": 1, "b": 2},
			{"a": 3, "c": 4},
		})
		assert.Equal(t, []string{"a"}, series.Names)
		assert.Equal(t, map[string][]float64{"a": {1, 3}}, series.Values)
	})

	t.Run("sorted names and run ordered values", func(t *testing.T) {
		series := Intersect([]map[string]float64{
			{"z": 1, "m": 10},
			{"z": 2, "m": 20},
			{"z": 3, "m": 30, "extra": 0},
		})
		assert.Equal(t, []string{"m", "z"}, series.Names)
		assert.Equal(t, []float64{10, 20, 30}, series.Values["m"])
		assert.Equal(t, []float64{1, 2, 3}, series.Values["z"])
	})

	t.Run("no runs", func(t *testing.T) {
		series := Intersect(nil)
		assert.Equal(t, 0, series.Len())
	})

	t.Run("empty first run", func(t *testing.T) {
		series := Intersect([]map[string]float64{{}, {"a": 1}})
		assert.Equal(t, 0, series.Len())
		assert.Empty(t, series.Values)
	})
}

// Package stats computes summary statistics over sample sequences.
package stats

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrNoSamples is returned when a summary is requested over zero samples.
var ErrNoSamples = errors.New("stats: no samples")

// Summary is the mean, minimum, maximum and median of a sequence.
type Summary struct {
	Mean   float64
	Min    float64
	Max    float64
	Median float64
}

// Summarize computes a Summary over values. values is not modified.
func Summarize(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrNoSamples
	}
	return Summary{
		Mean:   stat.Mean(values, nil),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
		Median: Median(values),
	}, nil
}

// Median returns the middle value of values, averaging the two middle
// values for even lengths. It panics on empty input.
func Median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

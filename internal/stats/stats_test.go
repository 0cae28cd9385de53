package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Summary
	}{
		{
			name:     "single value",
			values:   []float64{2.5},
			expected: Summary{Mean: 2.5, Min: 2.5, Max: 2.5, Median: 2.5},
		},
		{
			name:     "odd length unsorted",
			values:   []float64{3, 1, 2},
			expected: Summary{Mean: 2, Min: 1, Max: 3, Median: 2},
		},
		{
			name:     "even length averages middles",
			values:   []float64{4, 1, 3, 2},
			expected: Summary{Mean: 2.5, Min: 1, Max: 4, Median: 2.5},
		},
		{
			name:     "constant series",
			values:   []float64{10, 10, 10},
			expected: Summary{Mean: 10, Min: 10, Max: 10, Median: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Summarize(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected.Mean, got.Mean, 1e-12)
			assert.Equal(t, tt.expected.Min, got.Min)
			assert.Equal(t, tt.expected.Max, got.Max)
			assert.InDelta(t, tt.expected.Median, got.Median, 1e-12)
		})
	}
}

func TestSummarize_Empty(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoSamples)

	_, err = Summarize([]float64{})
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestMedian_DoesNotReorderInput(t *testing.T) {
	values := []float64{5, 1, 4}
	assert.Equal(t, 4.0, Median(values))
	assert.Equal(t, []float64{5, 1, 4}, values)
}

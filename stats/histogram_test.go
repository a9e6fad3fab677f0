package stats_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aperlab/apermap/stats"
)

func TestHistogram_Basic(t *testing.T) {
	counts, dividers, err := stats.Histogram([]float64{1, 2, 3, 4}, 3)
	require.NoError(t, err)
	require.Len(t, counts, 3)
	require.Len(t, dividers, 4)

	// Buckets [1,2) [2,3) [3,4]; the maximum lands in the last one.
	assert.Equal(t, []float64{1, 1, 2}, counts)
	assert.Equal(t, 1.0, dividers[0])
	assert.InDelta(t, 4.0, dividers[3], 1e-12)
}

// TestHistogram_CountsSumToN: no sample is lost to the exclusive top
// divider, whatever the data.
func TestHistogram_CountsSumToN(t *testing.T) {
	data := []float64{0.3, 0.9, 0.1, 0.55, 0.42, 0.42, 1.0, 0.0}
	counts, _, err := stats.Histogram(data, 5)
	require.NoError(t, err)

	total := 0.0
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, float64(len(data)), total)
}

// TestHistogram_ConstantData: a degenerate range widens to one unit so
// binning still succeeds.
func TestHistogram_ConstantData(t *testing.T) {
	counts, dividers, err := stats.Histogram([]float64{5, 5, 5}, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 0}, counts)
	assert.Equal(t, 5.0, dividers[0])
	assert.InDelta(t, 6.0, dividers[2], 1e-12)
}

func TestHistogram_Errors(t *testing.T) {
	_, _, err := stats.Histogram(nil, 4)
	assert.True(t, errors.Is(err, stats.ErrEmptyDataset))

	_, _, err = stats.Histogram([]float64{1, 2}, 0)
	assert.True(t, errors.Is(err, stats.ErrBadBins))
}

// TestFinite strips the sentinel values thresholding leaves behind.
func TestFinite(t *testing.T) {
	in := []float64{1, math.NaN(), 2, math.Inf(1), 3, math.Inf(-1)}
	assert.Equal(t, []float64{1, 2, 3}, stats.Finite(in))
	assert.Empty(t, stats.Finite([]float64{math.NaN()}))
}

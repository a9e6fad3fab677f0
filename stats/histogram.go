package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Histogram bins data into bins equal-width buckets spanning
// [min, max] and returns the per-bucket counts together with the
// bins+1 bucket dividers. Data containing NaN must be filtered first
// (see Finite). The input slice is never mutated.
//
// Time: O(n log n). Memory: O(n).
func Histogram(data []float64, bins int) (counts, dividers []float64, err error) {
	if len(data) == 0 {
		return nil, nil, ErrEmptyDataset
	}
	if bins < 1 {
		return nil, nil, ErrBadBins
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		hi = lo + 1
	}
	dividers = floats.Span(make([]float64, bins+1), lo, hi)
	// The top divider is exclusive in stat.Histogram; nudge it so the
	// maximum lands in the last bucket.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts = stat.Histogram(nil, dividers, sorted, nil)

	return counts, dividers, nil
}

// Finite returns a copy of data with NaN and ±Inf entries removed,
// the usual preparation after sentinel thresholding.
func Finite(data []float64) []float64 {
	out := make([]float64, 0, len(data))
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}

	return out
}

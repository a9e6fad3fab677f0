package stats

import "sort"

// PercentileOfValue returns the dataset value sitting at percentile p.
//
// The data is sorted ascending (skipped when presorted) and walked
// from the smallest element with a running count; the first element at
// which count/total*100 reaches p is returned. p=0 therefore yields
// the minimum, and p=100 walks through to the last element. The input
// slice is never mutated.
//
// Time: O(n log n), or O(n) when presorted.
func PercentileOfValue(p float64, data []float64, presorted bool) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	sorted := sortedCopy(data, presorted)

	total := float64(len(sorted))
	for i := range sorted {
		if float64(i)/total*100.0 >= p {
			return sorted[i], nil
		}
	}

	return sorted[len(sorted)-1], nil
}

// ValuePercentile returns the percentile of x within the dataset as a
// fraction in [0,1]: the rank of x's occurrence divided by the total
// count. By default the first occurrence is ranked, i.e. the count of
// elements strictly below x. With useLast, ties rank at their last
// occurrence, so for a present value the fraction grows by the number
// of extra ties. The input slice is never mutated.
//
// Time: O(n log n), or O(n) when presorted.
func ValuePercentile(x float64, data []float64, useLast, presorted bool) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	sorted := sortedCopy(data, presorted)

	below, ties := 0, 0
	for _, v := range sorted {
		switch {
		case v < x:
			below++
		case v == x:
			ties++
		}
	}
	rank := below
	if useLast && ties > 0 {
		rank += ties - 1
	}

	return float64(rank) / float64(len(sorted)), nil
}

// sortedCopy returns data sorted ascending, copying unless the caller
// vouches it is already ordered.
func sortedCopy(data []float64, presorted bool) []float64 {
	if presorted {
		return data
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	return sorted
}

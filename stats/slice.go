package stats

// AxisSlice extracts one full row or column from the flattened
// row-major grid flat (nz rows × nx columns).
//
// index is 1-based, matching the map coordinates users work with, and
// out-of-range values clamp to the nearest valid boundary instead of
// failing — callers legitimately probe first/last profiles with 0 or
// oversized indices. The returned slice is freshly allocated.
//
// Time: O(nx) for Row, O(nz) for Column.
func AxisSlice(flat []float64, nz, nx int, axis Axis, index int) ([]float64, error) {
	if len(flat) == 0 || len(flat) != nz*nx {
		return nil, ErrEmptyDataset
	}

	switch axis {
	case Row:
		index = clamp(index, 1, nz)
		out := make([]float64, nx)
		copy(out, flat[(index-1)*nx:index*nx])

		return out, nil
	case Column:
		index = clamp(index, 1, nx)
		out := make([]float64, nz)
		for z := 0; z < nz; z++ {
			out[z] = flat[z*nx+index-1]
		}

		return out, nil
	default:
		return nil, ErrInvalidAxis
	}
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

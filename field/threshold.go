package field

// Threshold replaces every cell v with opts.Sentinel when v <= opts.Min
// or v >= opts.Max, and returns the number of cells replaced. This is
// the only sanctioned mutation of a Field's grid: the flat view is
// regenerated immediately, and cached point data and graph derivations
// are discarded so the next request reflects the edited values. The
// interface topology is untouched (it depends only on the dimensions).
//
// Time: O(NZ×NX).
func (f *Field) Threshold(opts ThresholdOptions) int {
	replaced := 0
	for _, row := range f.cells {
		for x, v := range row {
			if v <= opts.Min || v >= opts.Max {
				row[x] = opts.Sentinel
				replaced++
			}
		}
	}
	if replaced > 0 {
		f.refreshFlat()
		f.points = nil
		f.graph = nil
	}

	return replaced
}

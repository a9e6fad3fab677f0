package cellgraph

// Weigh assembles the sparse weighted graph for one set of cell
// values. flat must be the row-major flattened grid of length NZ*NX.
//
// Each interface (i,j) gets weight 2*flat[i]*flat[j]. Interfaces whose
// weight is not strictly positive are dropped — this covers genuine
// zero apertures, negative products, and NaN sentinels left by
// thresholding. Kept interfaces are first emitted in enumeration order
// as (i,j,w), then mirrored as (j,i,w), so the triple is symmetric by
// construction.
//
// Time: O(E). Memory: O(E).
func (b *Builder) Weigh(flat []float64) (*Graph, error) {
	if len(flat) != b.Cells() {
		return nil, ErrLengthMismatch
	}

	kept := make([]Interface, 0, len(b.interfaces))
	weights := make([]float64, 0, len(b.interfaces))
	for _, f := range b.interfaces {
		w := 2 * flat[f.I] * flat[f.J]
		if !(w > 0) {
			continue
		}
		kept = append(kept, f)
		weights = append(weights, w)
	}

	m := len(kept)
	g := &Graph{
		N:       b.Cells(),
		Rows:    make([]int, 2*m),
		Cols:    make([]int, 2*m),
		Weights: make([]float64, 2*m),
	}
	for k, f := range kept {
		g.Rows[k], g.Cols[k], g.Weights[k] = f.I, f.J, weights[k]
		g.Rows[m+k], g.Cols[m+k], g.Weights[m+k] = f.J, f.I, weights[k]
	}

	return g, nil
}

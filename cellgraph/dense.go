package cellgraph

import "gonum.org/v1/gonum/mat"

// Dense expands the coordinate triple into an N×N dense adjacency
// matrix. Intended for small grids and tests; the triple itself is the
// surface meant for sparse-matrix construction.
//
// Memory: O(N²).
func (g *Graph) Dense() *mat.Dense {
	d := mat.NewDense(g.N, g.N, nil)
	for k, w := range g.Weights {
		d.Set(g.Rows[k], g.Cols[k], w)
	}

	return d
}

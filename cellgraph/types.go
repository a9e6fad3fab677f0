// Package cellgraph: core types and sentinel errors.
package cellgraph

import "errors"

// Sentinel errors for cellgraph operations.
var (
	// ErrBadDims indicates a grid dimension below 1.
	ErrBadDims = errors.New("cellgraph: grid dimensions must be at least 1x1")
	// ErrLengthMismatch indicates the flat value slice does not match
	// the topology's nz*nx cell count.
	ErrLengthMismatch = errors.New("cellgraph: value count does not match grid dimensions")
)

// Interface is an unordered pair of row-major cell indices that share
// a horizontal or vertical grid edge.
type Interface struct {
	I, J int
}

// Builder holds the fixed interface topology of an NZ×NX grid.
// It is immutable once built and safe to reuse across weighings.
type Builder struct {
	// NZ and NX are the row (Z) and column (X) counts.
	NZ, NX int

	interfaces []Interface
}

// Graph is a sparse, symmetric, positively-weighted adjacency
// structure over N = NZ*NX nodes. Entry k is the directed edge
// Rows[k] → Cols[k] with weight Weights[k]; every undirected interface
// that survives weighing contributes two entries, one per direction.
type Graph struct {
	// N is the node count (one node per grid cell).
	N int
	// Rows, Cols and Weights are equal-length coordinate arrays.
	Rows    []int
	Cols    []int
	Weights []float64
}

// Edges returns the number of stored directed entries (twice the kept
// interface count).
func (g *Graph) Edges() int {
	return len(g.Weights)
}

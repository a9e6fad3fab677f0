package field

import (
	"github.com/aperlab/apermap/cellgraph"
	"github.com/aperlab/apermap/pointdata"
)

// Field owns one parsed aperture map and its derived views.
//
// The grid (NZ rows × NX columns) is private: accessors hand out
// copies, so no two Fields and no caller ever alias the same buffer.
// The flat row-major view and the cell-interface topology are built
// once at construction; the topology depends only on (NZ, NX) and
// never changes, while the flat view is refreshed by Threshold. Point
// data and the weighted interface graph are derived lazily and cached
// until the grid is mutated.
type Field struct {
	// NZ and NX are the row (Z) and column (X) counts.
	NZ, NX int
	// Source records the file the map was loaded from, when known.
	Source string

	cells [][]float64
	flat  []float64
	topo  *cellgraph.Builder

	points *pointdata.PointData
	graph  *cellgraph.Graph
}

// New builds a Field from a rectangular, non-empty grid. The input is
// deep-copied to ensure the Field exclusively owns its cells.
// Returns ErrEmptyGrid or ErrNonRectangular on invalid input.
func New(grid [][]float64) (*Field, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	nx := len(grid[0])
	cells := make([][]float64, len(grid))
	for z, row := range grid {
		if len(row) != nx {
			return nil, ErrNonRectangular
		}
		cells[z] = make([]float64, nx)
		copy(cells[z], row)
	}

	return newField(cells), nil
}

// newField wraps an already-validated cell grid. The grid is adopted,
// not copied; callers must not retain it.
func newField(cells [][]float64) *Field {
	f := &Field{
		NZ:    len(cells),
		NX:    len(cells[0]),
		cells: cells,
	}
	f.refreshFlat()
	// Construction cannot fail: dimensions are validated above.
	f.topo, _ = cellgraph.New(f.NZ, f.NX)

	return f
}

// refreshFlat rebuilds the cached row-major view from the grid.
func (f *Field) refreshFlat() {
	if f.flat == nil {
		f.flat = make([]float64, f.NZ*f.NX)
	}
	for z, row := range f.cells {
		copy(f.flat[z*f.NX:(z+1)*f.NX], row)
	}
}

// At returns the cell value at row z, column x.
func (f *Field) At(z, x int) float64 {
	return f.cells[z][x]
}

// Grid returns a deep copy of the NZ×NX cell grid.
func (f *Field) Grid() [][]float64 {
	out := make([][]float64, f.NZ)
	for z, row := range f.cells {
		out[z] = make([]float64, f.NX)
		copy(out[z], row)
	}

	return out
}

// Flat returns a copy of the row-major flattened view; cell (z,x) sits
// at index z*NX + x.
func (f *Field) Flat() []float64 {
	out := make([]float64, len(f.flat))
	copy(out, f.flat)

	return out
}

// Topology returns the cached cell-interface topology builder. It is
// pure index arithmetic over (NZ, NX) and is shared by all derivations
// of this Field.
func (f *Field) Topology() *cellgraph.Builder {
	return f.topo
}

// InterfaceGraph derives (and caches) the symmetric sparse weighted
// adjacency triple for the current cell values.
func (f *Field) InterfaceGraph() (*cellgraph.Graph, error) {
	if f.graph != nil {
		return f.graph, nil
	}
	g, err := f.topo.Weigh(f.flat)
	if err != nil {
		return nil, err
	}
	f.graph = g

	return g, nil
}

// PointData derives (and caches) the NZ×NX×4 corner-value estimates
// for the current cell values.
func (f *Field) PointData() (*pointdata.PointData, error) {
	if f.points != nil {
		return f.points, nil
	}
	pd, err := pointdata.Interpolate(f.cells)
	if err != nil {
		return nil, err
	}
	f.points = pd

	return pd, nil
}

// Clone returns an independent copy of the Field carrying the grid,
// dimensions and source name. Derived caches are rebuilt on demand.
func (f *Field) Clone() *Field {
	cells := make([][]float64, f.NZ)
	for z, row := range f.cells {
		cells[z] = make([]float64, f.NX)
		copy(cells[z], row)
	}
	c := newField(cells)
	c.Source = f.Source

	return c
}

package pointdata

import "errors"

// Corner slot indices within a cell, in storage order.
const (
	BottomLeft = iota
	BottomRight
	TopRight
	TopLeft
)

// corners is the number of corner slots per cell.
const corners = 4

// Sentinel errors for point-data interpolation.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("pointdata: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pointdata: all rows must have the same length")
)

// PointData is an NZ×NX×4 array of corner-value estimates.
type PointData struct {
	// NZ and NX are the row (Z) and column (X) counts of the source grid.
	NZ, NX int

	data []float64
}

// At returns the estimate for the given corner of cell (z, x).
func (p *PointData) At(z, x, corner int) float64 {
	return p.data[(z*p.NX+x)*corners+corner]
}

// Corners returns all four corner estimates of cell (z, x) in slot order.
func (p *PointData) Corners(z, x int) [4]float64 {
	var out [4]float64
	copy(out[:], p.data[(z*p.NX+x)*corners:(z*p.NX+x+1)*corners])

	return out
}

// Flat returns a copy of the backing array, cell-major then slot order.
func (p *PointData) Flat() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)

	return out
}

// Interpolate derives the corner-value estimates for a rectangular,
// non-empty cell grid. Every corner slot of the result is written
// exactly once per the scheme described in the package comment; no
// slot is left at its zero default for valid input.
//
// Time: O(NZ×NX). Memory: O(NZ×NX).
func Interpolate(grid [][]float64) (*PointData, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	nz, nx := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != nx {
			return nil, ErrNonRectangular
		}
	}

	// Scratch buffer one larger in each dimension; the extra row and
	// column absorb the off-by-one writes and are cropped at the end.
	scratch := make([]float64, (nz+1)*(nx+1)*corners)
	set := func(z, x, c int, v float64) {
		scratch[(z*(nx+1)+x)*corners+c] = v
	}

	// Absolute corners of the field take the corner cell values.
	set(0, 0, BottomLeft, grid[0][0])
	set(0, nx, BottomRight, grid[0][nx-1])
	set(nz, nx, TopRight, grid[nz-1][nx-1])
	set(nz, 0, TopLeft, grid[nz-1][0])

	// Interior: one 2×2 block average feeds four corner slots of four
	// neighboring cells. The window clamps at the far edges, which
	// yields the one-sided averages there.
	for z := 0; z < nz; z++ {
		for x := 0; x < nx; x++ {
			v := blockAvg(grid, z, z+2, x, x+2)
			set(z, x, TopRight, v)
			set(z+1, x+1, BottomLeft, v)
			set(z+1, x, BottomRight, v)
			set(z, x+1, TopLeft, v)
		}
	}

	// Left and right edge columns: vertical pair averages.
	for z := 0; z < nz; z++ {
		v := blockAvg(grid, z, z+2, 0, 1)
		set(z, 0, TopLeft, v)
		set(z+1, 0, BottomLeft, v)

		v = blockAvg(grid, z, z+2, nx-1, nx)
		set(z, nx, TopRight, v)
		set(z+1, nx, BottomRight, v)
	}

	// Top and bottom edge rows: horizontal pair averages.
	for x := 0; x < nx; x++ {
		v := blockAvg(grid, 0, 1, x, x+2)
		set(0, x, BottomRight, v)
		set(0, x+1, BottomLeft, v)

		v = blockAvg(grid, nz-1, nz, x, x+2)
		set(nz, x, TopRight, v)
		set(nz, x+1, TopLeft, v)
	}

	// Crop the scratch buffer back to the NZ×NX extent.
	pd := &PointData{NZ: nz, NX: nx, data: make([]float64, nz*nx*corners)}
	for z := 0; z < nz; z++ {
		for x := 0; x < nx; x++ {
			src := (z*(nx+1) + x) * corners
			dst := (z*nx + x) * corners
			copy(pd.data[dst:dst+corners], scratch[src:src+corners])
		}
	}

	return pd, nil
}

// blockAvg averages grid over rows [z0,z1) and columns [x0,x1), with
// the upper bounds clamped to the grid extent.
func blockAvg(grid [][]float64, z0, z1, x0, x1 int) float64 {
	if z1 > len(grid) {
		z1 = len(grid)
	}
	if x1 > len(grid[0]) {
		x1 = len(grid[0])
	}
	sum, n := 0.0, 0
	for z := z0; z < z1; z++ {
		for x := x0; x < x1; x++ {
			sum += grid[z][x]
			n++
		}
	}

	return sum / float64(n)
}

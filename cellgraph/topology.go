package cellgraph

// New validates the grid dimensions and enumerates the full
// 4-connected interface set, exactly nz*(nx-1) + nx*(nz-1) pairs.
//
// The enumeration runs in three passes so the order is reproducible:
//
//  1. Right-boundary verticals: each row's last cell paired with the
//     last cell of the row above, larger index first.
//  2. Interior cells in row-major order, each contributing its
//     right-neighbor and up-neighbor interface.
//  3. The last row's remaining horizontal interfaces.
//
// The union of the passes is the exact 4-neighbor edge set with no
// duplicates; no consumer depends on the order itself.
//
// Time: O(nz×nx). Memory: O(nz×nx).
func New(nz, nx int) (*Builder, error) {
	if nz < 1 || nx < 1 {
		return nil, ErrBadDims
	}

	ifaces := make([]Interface, 0, nz*(nx-1)+nx*(nz-1))

	// Pass 1: verticals along the right boundary column.
	for z := 1; z < nz; z++ {
		ifaces = append(ifaces, Interface{I: z*nx + nx - 1, J: (z-1)*nx + nx - 1})
	}
	// Pass 2: interior cells, right then up neighbor.
	for z := 0; z < nz-1; z++ {
		for x := 0; x < nx-1; x++ {
			i := z*nx + x
			ifaces = append(ifaces,
				Interface{I: i, J: i + 1},
				Interface{I: i, J: i + nx},
			)
		}
	}
	// Pass 3: horizontals along the last row.
	for x := 0; x < nx-1; x++ {
		i := (nz-1)*nx + x
		ifaces = append(ifaces, Interface{I: i, J: i + 1})
	}

	return &Builder{NZ: nz, NX: nx, interfaces: ifaces}, nil
}

// Interfaces returns a copy of the interface list in enumeration order.
func (b *Builder) Interfaces() []Interface {
	out := make([]Interface, len(b.interfaces))
	copy(out, b.interfaces)

	return out
}

// Cells returns the node count NZ*NX.
func (b *Builder) Cells() int {
	return b.NZ * b.NX
}

// Coordinate converts a row-major cell index back to (z, x).
func (b *Builder) Coordinate(idx int) (z, x int) {
	return idx / b.NX, idx % b.NX
}

// Index maps (z, x) to the row-major cell index z*NX + x.
func (b *Builder) Index(z, x int) int {
	return z*b.NX + x
}

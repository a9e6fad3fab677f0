// Package cellgraph derives a weighted graph from a 2-D cell grid,
// with one node per cell and one edge per shared cell interface.
//
// What:
//
//   - New(nz, nx) enumerates the fixed 4-connected interface topology
//     of an nz×nx grid exactly once; it is pure index arithmetic and
//     independent of cell values.
//   - Builder.Weigh computes edge weights from the flat row-major cell
//     values and assembles a symmetric sparse adjacency triple
//     (rows, cols, weights) over nz*nx nodes, ready for sparse-matrix
//     construction by the caller.
//   - Builder.Channels finds the connected flow channels: components
//     of positive-valued cells linked by kept interfaces.
//
// Weighing rule:
//
//	weight(i,j) = 2 * value[i] * value[j]
//
// Edges whose weight is not strictly positive are dropped, which also
// discards interfaces touching NaN-sentinel cells. Every kept edge is
// materialized in both directions: symmetry is stored, not assumed.
//
// Complexity:
//
//   - New:      O(nz×nx) time and memory.
//   - Weigh:    O(E) with E = nz*(nx-1) + nx*(nz-1).
//   - Channels: O(nz×nx + E).
//
// Errors:
//
//   - ErrBadDims: a dimension below 1.
//   - ErrLengthMismatch: flat value count does not equal nz*nx.
package cellgraph

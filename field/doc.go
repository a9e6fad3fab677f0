// Package field ingests 2-D aperture maps stored as delimited text and
// owns the resulting Field entity.
//
// What:
//
//   - Parse / Load read a delimited numeric grid (delimiter explicit or
//     sniffed from the first data line) into a validated NZ×NX Field.
//   - Field caches a flat row-major view and the cell-interface
//     topology, and derives point data and the weighted interface
//     graph on demand.
//   - Threshold replaces out-of-range cells with a sentinel and
//     refreshes the flat view.
//   - StatFile parses the companion simulation statistics format.
//
// Conventions:
//
//   - Rows are the Z axis, columns the X axis: a map has NZ rows of NX
//     cells each, and cell (z,x) has row-major index z*NX + x.
//   - Lines starting with '#' are comments; blank lines are skipped.
//   - Parsing is strict: a row whose column count differs from the
//     first row fails with ErrNonRectangular (no partial Field).
//
// Errors:
//
//   - ErrEmptyGrid: no numeric rows, or a zero dimension.
//   - ErrNoDelimiter: auto-detection found no numeric/delimiter/numeric
//     pattern on the first data line.
//   - ErrNonRectangular: row length mismatch (wrapped with row detail).
//   - ErrStatMalformed / ErrStatHeader: stat-file structure violations.
package field

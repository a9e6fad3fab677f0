// Package render draws aperture fields and profile cuts as PNG images
// held in memory.
//
// Heatmap renders a Field's cell values on a smooth diverging palette;
// Profile renders a 1-D slice (row or column cut) as a line plot. Both
// return the encoded PNG bytes and never touch the filesystem — the
// caller decides where the image goes.
package render

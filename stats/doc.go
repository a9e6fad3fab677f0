// Package stats provides the distributional queries used in aperture
// field analysis: the two inverse percentile operations, row/column
// profile slices, and histograms.
//
// What:
//
//   - PercentileOfValue answers "what value sits at percentile p" by
//     walking the sorted data and accumulating a running count.
//   - ValuePercentile answers "what percentile does value x sit at",
//     as a fraction in [0,1], with a switch to rank the later
//     occurrence of tied values.
//   - AxisSlice extracts one full row (x direction) or column
//     (z direction) from a flattened grid. Indices are 1-based user
//     input and out-of-range values clamp to the nearest boundary.
//   - Histogram bins the data into equal-width buckets.
//
// Errors:
//
//   - ErrEmptyDataset: a query over zero-length data.
//   - ErrInvalidAxis: an axis name that is neither row/x nor column/z.
//   - ErrBadBins: a non-positive histogram bin count.
package stats

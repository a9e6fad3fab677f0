// Package apermap turns 2-D aperture (fracture thickness) maps into the
// in-memory structures that flow and percolation analyses consume.
//
// What apermap gives you:
//
//   - field/     — delimited-text map ingestion, the Field entity,
//     value thresholding and simulation stat-file parsing
//   - cellgraph/ — cell-interface topology and the symmetric sparse
//     weighted adjacency triple built from it
//   - pointdata/ — cell-centered → corner (point) value interpolation
//     for smooth visualization
//   - stats/     — percentile-of-value / value-of-percentile queries,
//     row & column profile slices, histograms
//   - render/    — heatmap and profile rendering to in-memory PNG bytes
//
// The library never writes output files: every operation returns data
// for the caller to serialize. The cmd/apermap CLI is the reference
// serializer.
//
// Quick sketch:
//
//	f, _ := field.Load("fracture-aperture.txt", field.DefaultOptions())
//	g, _ := f.InterfaceGraph()          // rows/cols/weights triple
//	pd, _ := f.PointData()              // NZ×NX×4 corner estimates
//	p50, _ := stats.PercentileOfValue(50, f.Flat(), false)
//
//	go get github.com/aperlab/apermap
package apermap

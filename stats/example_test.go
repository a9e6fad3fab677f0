// File: stats/example_test.go
package stats_test

import (
	"fmt"

	"github.com/aperlab/apermap/stats"
)

// ExamplePercentileOfValue queries the value sitting at a percentile
// and the percentile of a value over the same dataset.
func ExamplePercentileOfValue() {
	data := []float64{4, 1, 3, 2}

	v, _ := stats.PercentileOfValue(50, data, false)
	fmt.Println("value at p50:", v)

	frac, _ := stats.ValuePercentile(4, data, true, false)
	fmt.Println("fraction below max:", frac)

	// Output:
	// value at p50: 3
	// fraction below max: 0.75
}

// ExampleAxisSlice extracts a 1-based row profile from a flattened
// 2×3 grid.
func ExampleAxisSlice() {
	flat := []float64{1, 2, 3, 4, 5, 6}

	row, _ := stats.AxisSlice(flat, 2, 3, stats.Row, 2)
	fmt.Println("row 2:", row)

	col, _ := stats.AxisSlice(flat, 2, 3, stats.Column, 1)
	fmt.Println("column 1:", col)

	// Output:
	// row 2: [4 5 6]
	// column 1: [1 4]
}

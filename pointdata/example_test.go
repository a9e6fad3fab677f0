// File: pointdata/example_test.go
package pointdata_test

import (
	"fmt"

	"github.com/aperlab/apermap/pointdata"
)

// ExampleInterpolate derives corner-value estimates for a 2×2 grid.
// Interior corners average the surrounding 2×2 cell block; field
// corners keep their cell value.
func ExampleInterpolate() {
	pd, _ := pointdata.Interpolate([][]float64{
		{1, 2},
		{3, 4},
	})

	fmt.Println("dims:", pd.NZ, "x", pd.NX)
	fmt.Println("cell (0,0):", pd.Corners(0, 0))
	fmt.Println("shared interior corner:", pd.At(0, 0, pointdata.TopRight))

	// Output:
	// dims: 2 x 2
	// cell (0,0): [1 1.5 2.5 2]
	// shared interior corner: 2.5
}

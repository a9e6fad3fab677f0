// File: field/example_test.go
package field_test

import (
	"fmt"
	"strings"

	"github.com/aperlab/apermap/field"
)

// ExampleParse demonstrates loading a comma-delimited 2x2 aperture map
// with automatic delimiter detection and reading its derived views.
func ExampleParse() {
	src := "# demo map\n1,2\n3,4\n"
	f, _ := field.Parse(strings.NewReader(src), field.DefaultOptions())

	fmt.Println("dims:", f.NZ, "x", f.NX)
	fmt.Println("flat:", f.Flat())

	// Output:
	// dims: 2 x 2
	// flat: [1 2 3 4]
}

// ExampleField_Threshold demonstrates replacing closed apertures with
// a sentinel and the refreshed flat view.
func ExampleField_Threshold() {
	f, _ := field.New([][]float64{{1, 2}, {3, 4}})

	opts := field.DefaultThresholdOptions()
	opts.Min = 2
	opts.Sentinel = 0

	fmt.Println("replaced:", f.Threshold(opts))
	fmt.Println("flat:", f.Flat())

	// Output:
	// replaced: 2
	// flat: [0 0 3 4]
}

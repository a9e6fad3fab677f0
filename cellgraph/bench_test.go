package cellgraph_test

import (
	"testing"

	"github.com/aperlab/apermap/cellgraph"
)

func BenchmarkNew_256x256(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := cellgraph.New(256, 256); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWeigh_256x256(b *testing.B) {
	builder, err := cellgraph.New(256, 256)
	if err != nil {
		b.Fatal(err)
	}
	flat := uniform(builder.Cells(), 0.75)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := builder.Weigh(flat); err != nil {
			b.Fatal(err)
		}
	}
}

package cellgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/aperlab/apermap/cellgraph"
)

// uniform returns a flat grid of n cells all holding v.
func uniform(n int, v float64) []float64 {
	flat := make([]float64, n)
	for i := range flat {
		flat[i] = v
	}

	return flat
}

// TestWeigh_UnitGrid: every cell 1.0 means every interface is kept
// with weight exactly 2.0, and nothing is dropped.
func TestWeigh_UnitGrid(t *testing.T) {
	b, _ := cellgraph.New(3, 4)
	g, err := b.Weigh(uniform(b.Cells(), 1))
	if err != nil {
		t.Fatalf("Weigh: %v", err)
	}

	wantEdges := 2 * len(b.Interfaces())
	if g.Edges() != wantEdges {
		t.Fatalf("Edges() = %d; want %d", g.Edges(), wantEdges)
	}
	if g.N != b.Cells() {
		t.Errorf("N = %d; want %d", g.N, b.Cells())
	}
	for k, w := range g.Weights {
		if w != 2.0 {
			t.Errorf("weight[%d] = %g; want 2.0", k, w)
		}
	}
}

// TestWeigh_Symmetric: weight(i,j) == weight(j,i) for every stored edge.
func TestWeigh_Symmetric(t *testing.T) {
	b, _ := cellgraph.New(3, 3)
	flat := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	g, err := b.Weigh(flat)
	if err != nil {
		t.Fatalf("Weigh: %v", err)
	}

	byPair := make(map[[2]int]float64, g.Edges())
	for k := range g.Weights {
		byPair[[2]int{g.Rows[k], g.Cols[k]}] = g.Weights[k]
	}
	for k := range g.Weights {
		i, j, w := g.Rows[k], g.Cols[k], g.Weights[k]
		mirror, ok := byPair[[2]int{j, i}]
		if !ok {
			t.Fatalf("edge (%d,%d) has no mirror", i, j)
		}
		if mirror != w {
			t.Errorf("weight(%d,%d)=%g but weight(%d,%d)=%g", i, j, w, j, i, mirror)
		}
		if want := 2 * flat[i] * flat[j]; w != want {
			t.Errorf("weight(%d,%d)=%g; want %g", i, j, w, want)
		}
	}
}

// TestWeigh_ZeroCellDropsInterfaces: a zero cell removes every
// interface that touches it.
func TestWeigh_ZeroCellDropsInterfaces(t *testing.T) {
	b, _ := cellgraph.New(2, 2)
	flat := []float64{0, 1, 1, 1} // cell 0 closed
	g, err := b.Weigh(flat)
	if err != nil {
		t.Fatalf("Weigh: %v", err)
	}

	for k := range g.Weights {
		if g.Rows[k] == 0 || g.Cols[k] == 0 {
			t.Errorf("edge (%d,%d) touches the closed cell", g.Rows[k], g.Cols[k])
		}
	}
	// Interfaces (1,3) and (2,3) survive, mirrored.
	if g.Edges() != 4 {
		t.Errorf("Edges() = %d; want 4", g.Edges())
	}
}

// TestWeigh_NaNSentinelDropped: thresholded cells kill their interfaces.
func TestWeigh_NaNSentinelDropped(t *testing.T) {
	b, _ := cellgraph.New(2, 2)
	flat := []float64{math.NaN(), 1, 1, 1}
	g, err := b.Weigh(flat)
	if err != nil {
		t.Fatalf("Weigh: %v", err)
	}
	for k, w := range g.Weights {
		if math.IsNaN(w) || w <= 0 {
			t.Errorf("weight[%d] = %g; NaN/non-positive must be dropped", k, w)
		}
	}
	if g.Edges() != 4 {
		t.Errorf("Edges() = %d; want 4", g.Edges())
	}
}

// TestWeigh_NegativeProductDropped: negative weights never survive.
func TestWeigh_NegativeProductDropped(t *testing.T) {
	b, _ := cellgraph.New(1, 2)
	g, err := b.Weigh([]float64{-1, 1})
	if err != nil {
		t.Fatalf("Weigh: %v", err)
	}
	if g.Edges() != 0 {
		t.Errorf("Edges() = %d; want 0", g.Edges())
	}
}

// TestWeigh_LengthMismatch rejects mis-sized flat views.
func TestWeigh_LengthMismatch(t *testing.T) {
	b, _ := cellgraph.New(2, 2)
	if _, err := b.Weigh([]float64{1, 2, 3}); !errors.Is(err, cellgraph.ErrLengthMismatch) {
		t.Errorf("error = %v; want ErrLengthMismatch", err)
	}
}

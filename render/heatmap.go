package render

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/aperlab/apermap/field"
)

// ErrNilField indicates a nil Field was passed to a renderer.
var ErrNilField = errors.New("render: field is nil")

// heatGrid adapts a Field to plotter.GridXYZ. Sentinel (NaN) cells are
// presented at the low end of the value range so thresholded regions
// read as closed apertures.
type heatGrid struct {
	f      *field.Field
	lo, hi float64
}

func newHeatGrid(f *field.Field) *heatGrid {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range f.Flat() {
		if math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		// All cells are sentinels.
		lo, hi = 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}

	return &heatGrid{f: f, lo: lo, hi: hi}
}

func (g *heatGrid) Dims() (c, r int) { return g.f.NX, g.f.NZ }

func (g *heatGrid) Z(c, r int) float64 {
	v := g.f.At(r, c)
	if math.IsNaN(v) {
		return g.lo
	}

	return v
}

func (g *heatGrid) X(c int) float64 { return float64(c) }
func (g *heatGrid) Y(r int) float64 { return float64(r) }

// Heatmap renders the Field's cell values as a PNG heatmap and returns
// the encoded bytes.
func Heatmap(f *field.Field, title string) ([]byte, error) {
	if f == nil {
		return nil, ErrNilField
	}

	grid := newHeatGrid(f)
	hm := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))
	hm.Min, hm.Max = grid.lo, grid.hi

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X cell"
	p.Y.Label.Text = "Z cell"
	p.Add(hm)

	return encodePNG(p, vg.Points(640), vg.Points(480))
}

// encodePNG writes the plot into an in-memory PNG buffer.
func encodePNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("render: encode: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render: encode: %w", err)
	}

	return buf.Bytes(), nil
}

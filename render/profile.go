package render

import (
	"errors"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmptyProfile indicates a profile render with no data points.
var ErrEmptyProfile = errors.New("render: profile must have at least one value")

// Profile renders a 1-D slice of cell values as a PNG line plot and
// returns the encoded bytes. The horizontal axis is the 1-based cell
// position along the cut; NaN sentinel values break the line.
func Profile(values []float64, title, xlabel, ylabel string) ([]byte, error) {
	if len(values) == 0 {
		return nil, ErrEmptyProfile
	}

	pts := make(plotter.XYs, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(i + 1), Y: v})
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())

	if len(pts) > 0 {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		p.Add(line)
	}

	return encodePNG(p, vg.Points(640), vg.Points(320))
}

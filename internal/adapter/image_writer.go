package adapter

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/maratik123/tsp/internal/geo"
	"github.com/maratik123/tsp/internal/model"
)

// Render geometry. A 4K canvas keeps ICAO labels readable even for
// continental tours.
const (
	renderWidth  = 3840
	renderHeight = 2160
	renderMargin = 0.05
	nodeRadius   = 8.0
	labelOffset  = 10.0
)

// ImageWriter renders a tour over the airport set to an image file.
type ImageWriter interface {
	WriteTour(path string, airports []model.Airport, tour []int) error
}

// TourRenderer draws airports as hollow circles with ICAO labels and the
// tour as lines between consecutive stops, on a white canvas scaled to the
// airports' bounding box.
type TourRenderer struct {
	width  int
	height int
	margin float64
}

// NewTourRenderer constructs a TourRenderer with the default canvas size.
func NewTourRenderer() *TourRenderer {
	return &TourRenderer{
		width:  renderWidth,
		height: renderHeight,
		margin: renderMargin,
	}
}

// WriteTour renders the tour as a PNG at path, creating parent directories
// as needed. The tour is drawn closed: the last stop connects back to the
// first.
func (r *TourRenderer) WriteTour(path string, airports []model.Airport, tour []int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	topLeft, bottomRight := geo.Bounds(airports, r.margin)
	sc := geo.NewScaler(topLeft, bottomRight, r.width, r.height)

	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0.1, 0.1, 0.7)
	dc.SetLineWidth(2)
	for i, node := range tour {
		next := tour[(i+1)%len(tour)]
		x1, y1 := sc.Map(airports[node].Coord)
		x2, y2 := sc.Map(airports[next].Coord)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetLineWidth(3)
	for _, apt := range airports {
		x, y := sc.Map(apt.Coord)
		dc.SetRGB(0.8, 0.1, 0.1)
		dc.DrawCircle(x, y, nodeRadius)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawString(apt.ICAO, x+labelOffset, y-labelOffset)
	}

	return dc.SavePNG(path)
}

package geo

import "github.com/maratik123/tsp/internal/model"

// Scaler maps geographic coordinates onto image pixels with a linear
// transform. North is up: the top-left corner carries the highest latitude
// and the lowest longitude.
type Scaler struct {
	scaleX  float64
	scaleY  float64
	offsetX float64
	offsetY float64
}

// NewScaler builds a Scaler that maps topLeft to pixel (0,0) and
// bottomRight to pixel (width-1, height-1).
func NewScaler(topLeft, bottomRight model.Coord, width, height int) Scaler {
	scaleX := float64(width-1) / (bottomRight.Lon - topLeft.Lon)
	scaleY := float64(height-1) / (bottomRight.Lat - topLeft.Lat)
	return Scaler{
		scaleX:  scaleX,
		scaleY:  scaleY,
		offsetX: topLeft.Lon * scaleX,
		offsetY: topLeft.Lat * scaleY,
	}
}

// Map converts a coordinate to pixel position.
func (s Scaler) Map(c model.Coord) (x, y float64) {
	return c.Lon*s.scaleX - s.offsetX, c.Lat*s.scaleY - s.offsetY
}

// degenerateSpan is the half-extent, in degrees, given to a bounding box
// axis along which every airport sits at the same coordinate. Without it
// the scale along that axis would divide by zero.
const degenerateSpan = 0.5

// Bounds returns the corner coordinates enclosing all the given airports,
// expanded by the margin fraction on each side. Axes with no extent are
// padded so the resulting box always has a nonzero area.
func Bounds(airports []model.Airport, margin float64) (topLeft, bottomRight model.Coord) {
	if len(airports) == 0 {
		return
	}
	topLeft = airports[0].Coord
	bottomRight = airports[0].Coord
	for _, apt := range airports[1:] {
		c := apt.Coord
		if c.Lat > topLeft.Lat {
			topLeft.Lat = c.Lat
		}
		if c.Lon < topLeft.Lon {
			topLeft.Lon = c.Lon
		}
		if c.Lat < bottomRight.Lat {
			bottomRight.Lat = c.Lat
		}
		if c.Lon > bottomRight.Lon {
			bottomRight.Lon = c.Lon
		}
	}
	dLat := (topLeft.Lat - bottomRight.Lat) * margin
	dLon := (bottomRight.Lon - topLeft.Lon) * margin
	topLeft.Lat += dLat
	topLeft.Lon -= dLon
	bottomRight.Lat -= dLat
	bottomRight.Lon += dLon
	if topLeft.Lat == bottomRight.Lat {
		topLeft.Lat += degenerateSpan
		bottomRight.Lat -= degenerateSpan
	}
	if topLeft.Lon == bottomRight.Lon {
		topLeft.Lon -= degenerateSpan
		bottomRight.Lon += degenerateSpan
	}
	return
}

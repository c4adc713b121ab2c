// Package geo provides great-circle distances on a spherical Earth and the
// linear coordinate scaler used when rendering tours.
package geo

import (
	"math"

	"github.com/maratik123/tsp/internal/model"
)

// EarthRadiusKm is the mean Earth radius of the spherical approximation.
const EarthRadiusKm = 6371.0

// GreatCircle returns the great-circle distance between two coordinates in
// kilometers, using the haversine formulation which stays well conditioned
// for nearby points.
func GreatCircle(c1, c2 model.Coord) float64 {
	lat1 := c1.Lat * math.Pi / 180
	lat2 := c2.Lat * math.Pi / 180
	dLat2 := (lat2 - lat1) / 2
	dLon2 := (c2.Lon - c1.Lon) * math.Pi / 180 / 2

	sinLat := math.Sin(dLat2)
	sinLon := math.Sin(dLon2)

	a := sinLat*sinLat + sinLon*sinLon*math.Cos(lat1)*math.Cos(lat2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

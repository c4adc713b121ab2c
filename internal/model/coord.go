// Package model holds the plain data types shared across the pipeline:
// decoded ARINC 424 records, airports and their coordinates.
package model

import "fmt"

// Coord is a geographic position in decimal degrees.
// Latitude is positive north, longitude positive east.
type Coord struct {
	Lat float64
	Lon float64
}

// LatitudeHemisphere distinguishes north from south.
type LatitudeHemisphere byte

// Latitude hemisphere letters as they appear in the record.
const (
	North LatitudeHemisphere = 'N'
	South LatitudeHemisphere = 'S'
)

// LongitudeHemisphere distinguishes east from west.
type LongitudeHemisphere byte

// Longitude hemisphere letters as they appear in the record.
const (
	East LongitudeHemisphere = 'E'
	West LongitudeHemisphere = 'W'
)

// Latitude is a degrees/minutes/seconds latitude as encoded in an
// airport reference point field. FractionalSeconds is hundredths.
type Latitude struct {
	Hemisphere        LatitudeHemisphere
	Degrees           uint8
	Minutes           uint8
	Seconds           uint8
	FractionalSeconds uint8
}

// Decimal converts to signed decimal degrees, negative in the south.
func (l Latitude) Decimal() float64 {
	d := dmsToDecimal(l.Degrees, l.Minutes, l.Seconds, l.FractionalSeconds)
	if l.Hemisphere == South {
		return -d
	}
	return d
}

func (l Latitude) String() string {
	return fmt.Sprintf("%d°%d′%d.%02d″%c",
		l.Degrees, l.Minutes, l.Seconds, l.FractionalSeconds, l.Hemisphere)
}

// Longitude is a degrees/minutes/seconds longitude as encoded in an
// airport reference point field. FractionalSeconds is hundredths.
type Longitude struct {
	Hemisphere        LongitudeHemisphere
	Degrees           uint8
	Minutes           uint8
	Seconds           uint8
	FractionalSeconds uint8
}

// Decimal converts to signed decimal degrees, negative in the west.
func (l Longitude) Decimal() float64 {
	d := dmsToDecimal(l.Degrees, l.Minutes, l.Seconds, l.FractionalSeconds)
	if l.Hemisphere == West {
		return -d
	}
	return d
}

func (l Longitude) String() string {
	return fmt.Sprintf("%d°%d′%d.%02d″%c",
		l.Degrees, l.Minutes, l.Seconds, l.FractionalSeconds, l.Hemisphere)
}

func dmsToDecimal(deg, min, sec, frac uint8) float64 {
	return float64(deg) + float64(min)/60 + (float64(sec)+float64(frac)/100)/3600
}

// Package geo provides great-circle distance math for proximity scoring.
package geo

import "math"

const earthRadiusMiles = 3958.8

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// MilesBetween returns the great-circle distance between two points in
// statute miles using the haversine formula.
func MilesBetween(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180.0
	lng1 := a.Lng * math.Pi / 180.0
	lat2 := b.Lat * math.Pi / 180.0
	lng2 := b.Lng * math.Pi / 180.0

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

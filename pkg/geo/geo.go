// Package geo provides geographic calculations on latitude/longitude
// coordinates.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	// Lat is the latitude in [-90, 90]
	Lat float64

	// Lon is the longitude in [-180, 180]
	Lon float64
}

// Validate checks that the coordinate is within range.
func (p Point) Validate() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("latitude %.2f out of range [-90, 90]", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("longitude %.2f out of range [-180, 180]", p.Lon)
	}
	return nil
}

// HaversineDistance returns the great-circle distance between two points
// in kilometers.
//
//	munich := geo.Point{Lat: 48.1372, Lon: 11.5756}
//	berlin := geo.Point{Lat: 52.5186, Lon: 13.4083}
//	d, _ := geo.HaversineDistance(munich, berlin) // ≈ 504.2
func HaversineDistance(origin, destination Point) (float64, error) {
	if err := origin.Validate(); err != nil {
		return 0, fmt.Errorf("origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return 0, fmt.Errorf("destination: %w", err)
	}

	dLat := radians(destination.Lat - origin.Lat)
	dLon := radians(destination.Lon - origin.Lon)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(origin.Lat))*math.Cos(radians(destination.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c, nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

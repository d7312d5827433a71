package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
	EarthRadiusKm     = 6371.0    // Earth's mean radius in kilometers
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// ValidCoordinates reports whether lat/lng are finite and within range.
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// BoundingBox returns a lat/lng box that contains the circle of the given
// radius (meters) around the center, used to prefilter candidates in SQL
// before the exact haversine check. Longitude span widens toward the poles.
func BoundingBox(lat, lng, radius float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := (radius / EarthRadiusMeters) * 180 / math.Pi

	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 1e-9 {
		cosLat = 1e-9
	}
	lngDelta := latDelta / cosLat

	return lat - latDelta, lat + latDelta, lng - lngDelta, lng + lngDelta
}

package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/Simphiwe396/swift-ride-delivery-sub000/internal/pkg/models"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula
const EarthRadiusMeters = 6371000.0

// DistanceMeters calculates the great-circle distance between two points
// in meters using the haversine formula. NaN inputs propagate as NaN;
// callers validate coordinates upstream.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180.0
	rlon1 := lon1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlon2 := lon2 * math.Pi / 180.0

	dLat := rlat2 - rlat1
	dLon := rlon2 - rlon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceKm calculates the great-circle distance between two locations in kilometers
func DistanceKm(a, b models.Location) float64 {
	return DistanceMeters(a.Latitude, a.Longitude, b.Latitude, b.Longitude) / 1000.0
}

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// ValidCoordinates reports whether lat/lng are finite and within range
func ValidCoordinates(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

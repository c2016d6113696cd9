package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty" db:"timestamp"`
}

// LocationSample is one raw GPS sample emitted by a driver's client.
// Samples are not persisted; only their effect on DriverState is.
type LocationSample struct {
	DriverID  string    `json:"driverId"`
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// NearbyDriver represents a driver with their current location and
// distance from a query point
type NearbyDriver struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
	Distance float64  `json:"distance_km"`
}

// DriverUpdate is the enriched state pushed to admin observers after a
// sample has been applied.
type DriverUpdate struct {
	DriverID      string       `json:"driverId"`
	Name          string       `json:"name,omitempty"`
	Latitude      float64      `json:"lat"`
	Longitude     float64      `json:"lng"`
	DailyDistance float64      `json:"dailyDistanceMeters"`
	EffectiveDate string       `json:"effectiveDate"`
	Geohash       string       `json:"geohash,omitempty"`
	Status        DriverStatus `json:"status"`
	Timestamp     time.Time    `json:"timestamp"`
}

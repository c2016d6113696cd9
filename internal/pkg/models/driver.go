package models

import "time"

// DriverStatus represents a driver's availability
type DriverStatus string

const (
	DriverStatusOffline   DriverStatus = "offline"
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOnBreak   DriverStatus = "on_break"
)

// Valid reports whether s is a known driver status.
func (s DriverStatus) Valid() bool {
	switch s {
	case DriverStatusOffline, DriverStatusAvailable, DriverStatusBusy, DriverStatusOnBreak:
		return true
	}
	return false
}

// DriverState is the authoritative record of one driver: last known
// position, daily odometer, availability and current trip binding.
// Drivers are keyed by a generated ID; the display name is a separate,
// non-unique attribute.
type DriverState struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Location      *Location    `json:"location,omitempty"`
	DailyDistance float64      `json:"daily_distance_meters"`
	EffectiveDate string       `json:"effective_date"` // UTC calendar date, YYYY-MM-DD
	Status        DriverStatus `json:"status"`
	TripID        string       `json:"trip_id,omitempty"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// DriverPatch lists exactly the fields a state mutation may update.
// Nil fields are left untouched.
type DriverPatch struct {
	Name          *string
	Location      *Location
	DailyDistance *float64
	EffectiveDate *string
	Status        *DriverStatus
	UpdatedAt     *time.Time
}

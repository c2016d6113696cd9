package models

import "time"

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusRequested  TripStatus = "requested"
	TripStatusAccepted   TripStatus = "accepted"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

// Terminal reports whether no further transition is possible.
func (s TripStatus) Terminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// CanTransitionTo reports whether the status may move to next.
// Transitions follow requested -> accepted -> in_progress -> completed,
// with cancelled reachable from any non-terminal state.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == TripStatusCancelled {
		return true
	}
	switch s {
	case TripStatusRequested:
		return next == TripStatusAccepted
	case TripStatusAccepted:
		return next == TripStatusInProgress
	case TripStatusInProgress:
		return next == TripStatusCompleted
	}
	return false
}

// Trip represents a delivery trip record
type Trip struct {
	ID          string     `json:"id" db:"id"`
	CustomerID  string     `json:"customer_id" db:"customer_id"`
	DriverID    string     `json:"driver_id,omitempty" db:"driver_id"`
	DriverName  string     `json:"driver_name,omitempty" db:"driver_name"`
	Pickup      Location   `json:"pickup"`
	Destination Location   `json:"destination"`
	DistanceKm  float64    `json:"distance_km" db:"distance_km"`
	Fare        float64    `json:"fare" db:"fare"`
	Currency    string     `json:"currency" db:"currency"`
	Status      TripStatus `json:"status" db:"status"`
	RequestedAt time.Time  `json:"requested_at" db:"requested_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// TripRequest describes an incoming delivery request
type TripRequest struct {
	CustomerID  string   `json:"customer_id"`
	Pickup      Location `json:"pickup"`
	Destination Location `json:"destination"`
}

// TripAssignment pairs a newly created trip with the reserved driver
type TripAssignment struct {
	Trip   *Trip        `json:"trip"`
	Driver *DriverState `json:"driver"`
}

// TripStatusUpdate is the payload for a trip status transition
type TripStatusUpdate struct {
	TripID string     `json:"trip_id"`
	Status TripStatus `json:"status"`
}

// TripEvent is published on the bus when a trip changes state
type TripEvent struct {
	TripID     string     `json:"trip_id"`
	DriverID   string     `json:"driver_id,omitempty"`
	DriverName string     `json:"driver_name,omitempty"`
	CustomerID string     `json:"customer_id"`
	Status     TripStatus `json:"status"`
	Timestamp  time.Time  `json:"timestamp"`
}

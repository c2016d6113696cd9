package constants

// NATS subjects
const (
	// Tracking
	SubjectLocationUpdate = "location.update"

	// Dispatch
	SubjectTripAssigned  = "trip.assigned"
	SubjectTripUpdated   = "trip.updated"
	SubjectTripCompleted = "trip.completed"
)

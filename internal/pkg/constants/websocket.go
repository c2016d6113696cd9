package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"

	// Inbound events
	EventDriverLocation = "driver:location"
	EventRequestTrip    = "request-trip"
	EventSubscribeTrip  = "subscribe-trip"

	// Outbound events
	EventAdminDriverUpdate = "admin:driverUpdate"
	EventTripAssigned      = "trip-assigned"
	EventTripAccepted      = "trip-accepted"
	EventTripUpdated       = "trip-updated"
)

// WebSocket error codes
const (
	ErrorInvalidFormat      = "invalid_format"
	ErrorInvalidLocation    = "invalid_location"
	ErrorNoDriversAvailable = "no_drivers_available"
	ErrorInternalError      = "internal_error"
)

package constants

// Redis key formats
const (
	KeyDriverState = "driver:state:%s" // Format: driver:state:{driver_id}
	KeyDriverGeo   = "drivers:geo"     // Geo set of all driver positions
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldStatus    = "status"
	FieldDistance  = "daily_distance"
	FieldDate      = "effective_date"
)

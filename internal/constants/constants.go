package constants

import "time"

const (
	DefaultBaseURL = "https://api.spacexdata.com/v4"

	LaunchQueryPath = "launches/query"
)

const (
	DefaultHTTPTimeout = 10 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	HTTPStatusOKMin = 200
	HTTPStatusOKMax = 300
)

const (
	// DateParamLayout is the calendar-date format accepted by the API query
	// parameters (no time component, interpreted as UTC).
	DateParamLayout = "2006-01-02"
)

const (
	FieldID       = "id"
	FieldDateUnix = "date_unix"
	FieldPayloads = "payloads"
	FieldMassKg   = "mass_kg"
)

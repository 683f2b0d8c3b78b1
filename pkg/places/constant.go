package places

import "time"

const (
	// DefaultBaseURL is the Places API (legacy web service) root
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 15 * time.Second

	// detailFields is the field mask requested from the details endpoint
	detailFields = "name,rating,formatted_address,formatted_phone_number,website"

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

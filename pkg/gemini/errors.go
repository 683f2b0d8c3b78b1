package gemini

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("gemini: APIKey is required")

// APIError is a non-200 answer from the Gemini API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini: API error %d: %s", e.StatusCode, e.Body)
}

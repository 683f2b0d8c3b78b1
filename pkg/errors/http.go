// Package errors carries errors that know their HTTP representation.
package errors

import "net/http"

// HTTPError is an error rendered with a specific status code and public message.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Common errors shared by every delivery package.
var (
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
)

package extract

import (
	"errors"
	"fmt"
)

// ErrMalformedOutput is matched by every extraction failure.
var ErrMalformedOutput = errors.New("malformed output")

// MalformedError carries the cleaned text so callers can log what the model actually sent.
type MalformedError struct {
	Shape   Shape
	Reason  string
	Cleaned string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed output: expected %s: %s", e.Shape, e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedOutput
}

func malformed(shape Shape, cleaned, format string, arg ...any) *MalformedError {
	return &MalformedError{
		Shape:   shape,
		Reason:  fmt.Sprintf(format, arg...),
		Cleaned: cleaned,
	}
}

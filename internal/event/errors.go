package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyInput       = errors.New("input text is empty")
	ErrIntentExtraction = errors.New("failed to extract intent")
	ErrInvalidIntent    = errors.New("intent is missing required fields")
	ErrInvalidGraph     = errors.New("task graph is invalid")
)

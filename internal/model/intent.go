package model

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for intents, schedules and forecasts.
const DateLayout = "2006-01-02"

var (
	ErrMissingEventType = errors.New("intent: event_type is required")
	ErrMissingLocation  = errors.New("intent: location is required")
)

// Intent is the normalized user request. It is built once per run and never mutated.
type Intent struct {
	EventType      string         `json:"event_type"`
	Location       string         `json:"location"`
	EventDate      string         `json:"event_date,omitempty"` // YYYY-MM-DD
	GuestCount     int            `json:"guest_count,omitempty"`
	Preferences    map[string]any `json:"preferences,omitempty"`
	EventTheme     string         `json:"event_theme,omitempty"`
	MealCount      int            `json:"meal_count,omitempty"`
	TransportNeeds string         `json:"transport_needs,omitempty"`
	Sightseeing    *bool          `json:"sightseeing,omitempty"`
}

// Validate checks the fields every downstream task needs.
func (i Intent) Validate() error {
	if strings.TrimSpace(i.EventType) == "" {
		return ErrMissingEventType
	}
	if strings.TrimSpace(i.Location) == "" {
		return ErrMissingLocation
	}
	return nil
}

// StartDate parses EventDate. ok is false when the date is absent or malformed.
func (i Intent) StartDate() (time.Time, bool) {
	if i.EventDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, i.EventDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

package datemath

import (
	"errors"
	"time"
)

// DateLayout is the calendar-date form produced by Normalize.
const DateLayout = "2006-01-02"

// ErrUnrecognized is returned when a date expression matches no known form.
var ErrUnrecognized = errors.New("datemath: unrecognized date expression")

// absoluteLayouts are tried in order before relative expressions.
var absoluteLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"Monday, January 2, 2006",
}

// Span is an inclusive run of consecutive calendar days.
type Span struct {
	Start time.Time
	Days  int
}

// Dates lists every day of the span as YYYY-MM-DD.
func (s Span) Dates() []string {
	out := make([]string, 0, s.Days)
	for i := 0; i < s.Days; i++ {
		out = append(out, s.Start.AddDate(0, 0, i).Format(DateLayout))
	}
	return out
}

// End returns the last day of the span.
func (s Span) End() time.Time {
	if s.Days <= 0 {
		return s.Start
	}
	return s.Start.AddDate(0, 0, s.Days-1)
}

package gcalendar

import (
	"errors"
	"time"
)

const (
	// DefaultCalendarID is used when a request names no calendar.
	DefaultCalendarID = "primary"
	// DefaultTokenPath is where the calendar-auth command writes the OAuth token.
	DefaultTokenPath = "token.json"
)

var (
	ErrUnsupportedCredentials = errors.New("gcalendar: credentials are neither a service account key nor OAuth client credentials")
	ErrMissingToken           = errors.New("gcalendar: OAuth credentials need a stored token, run calendar-auth first")
)

// CreateEventRequest is the input for creating a Google Calendar event.
// AllDay events use the calendar dates of StartTime and EndTime only.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
	Timezone    string // IANA name, e.g. "Asia/Karachi"
}

// Event is the subset of a created event the planner reports back.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool
}

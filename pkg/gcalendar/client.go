package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// Credentials locate the key material. TokenPath is only read for OAuth
// desktop credentials; service accounts ignore it.
type Credentials struct {
	Path      string
	TokenPath string
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials file.
func NewClientFromCredentialsFile(ctx context.Context, creds Credentials) (*Client, error) {
	data, err := os.ReadFile(creds.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	tokenPath := creds.TokenPath
	if tokenPath == "" {
		tokenPath = DefaultTokenPath
	}
	return NewClientFromCredentialsJSON(ctx, data, func() ([]byte, error) {
		return os.ReadFile(tokenPath)
	})
}

// NewClientFromCredentialsJSON accepts either a service account key or OAuth
// desktop credentials. loadToken supplies the stored OAuth token for the latter.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, loadToken func() ([]byte, error)) (*Client, error) {
	if jwt, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope); err == nil {
		return newClient(ctx, option.WithTokenSource(jwt.TokenSource(ctx)))
	}

	oauthConfig, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedCredentials, err)
	}
	if loadToken == nil {
		return nil, ErrMissingToken
	}

	tokenData, err := loadToken()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMissingToken, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse oauth token: %w", err)
	}
	return newClient(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	return newClient(ctx, append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)...)
}

func newClient(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	if req.Summary == "" {
		return nil, errors.New("gcalendar: summary is required")
	}

	end := req.EndTime
	if req.AllDay && !end.After(req.StartTime) {
		// the API treats the end date as exclusive
		end = req.StartTime.AddDate(0, 0, 1)
	}

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Location:    req.Location,
		Start:       eventTime(req.StartTime, req.AllDay, req.Timezone),
		End:         eventTime(end, req.AllDay, req.Timezone),
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   end,
		AllDay:    req.AllDay,
	}, nil
}

func calendarID(id string) string {
	if id == "" {
		return DefaultCalendarID
	}
	return id
}

func eventTime(t time.Time, allDay bool, tz string) *calendar.EventDateTime {
	if allDay {
		return &calendar.EventDateTime{Date: t.Format(time.DateOnly)}
	}
	return &calendar.EventDateTime{DateTime: t.Format(time.RFC3339), TimeZone: tz}
}

package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"event-planner/pkg/gcalendar"
)

const desktopCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func tokenLoader(data string, err error) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(data), err }
}

func TestNewClientFromCredentialsJSON(t *testing.T) {
	ctx := context.Background()
	validToken := `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`

	t.Run("unsupported credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`), nil)
		assert.ErrorIs(t, err, gcalendar.ErrUnsupportedCredentials)
	})

	t.Run("service account ignores the token", func(t *testing.T) {
		sa := `{"type":"service_account","client_email":"planner@test.iam.gserviceaccount.com","private_key":"unused","token_uri":"https://oauth2.googleapis.com/token"}`
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(sa), nil)
		assert.NoError(t, err)
	})

	t.Run("desktop credentials with token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), tokenLoader(validToken, nil))
		assert.NoError(t, err)
	})

	t.Run("desktop credentials without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), tokenLoader("", os.ErrNotExist))
		assert.ErrorIs(t, err, gcalendar.ErrMissingToken)

		_, err = gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), nil)
		assert.ErrorIs(t, err, gcalendar.ErrMissingToken)
	})

	t.Run("desktop credentials with corrupt token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(desktopCreds), tokenLoader(`{"broken": true`, nil))
		assert.ErrorContains(t, err, "parse oauth token")
	})
}

func TestNewClientFromCredentialsFile(t *testing.T) {
	dir := t.TempDir()
	credsPath := filepath.Join(dir, "creds.json")
	tokenPath := filepath.Join(dir, "tok.json")
	require.NoError(t, os.WriteFile(credsPath, []byte(desktopCreds), 0o600))

	_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), gcalendar.Credentials{Path: credsPath, TokenPath: tokenPath})
	assert.ErrorIs(t, err, gcalendar.ErrMissingToken)

	require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"dummy","token_type":"Bearer"}`), 0o600))
	_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), gcalendar.Credentials{Path: credsPath, TokenPath: tokenPath})
	assert.NoError(t, err)

	_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), gcalendar.Credentials{Path: filepath.Join(dir, "missing.json")})
	assert.ErrorContains(t, err, "read credentials")
}

type insertedEvent struct {
	Summary string `json:"summary"`
	Start   struct {
		Date     string `json:"date"`
		DateTime string `json:"dateTime"`
	} `json:"start"`
	End struct {
		Date string `json:"date"`
	} `json:"end"`
}

func newFakeCalendar(t *testing.T, status int) (*gcalendar.Client, *[]insertedEvent, *[]string) {
	t.Helper()
	var got []insertedEvent
	var paths []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		var ev insertedEvent
		_ = json.NewDecoder(r.Body).Decode(&ev)
		got = append(got, ev)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"id":       "ev-1",
				"summary":  ev.Summary,
				"htmlLink": "https://calendar.google.com/event?eid=ev-1",
			})
			return
		}
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	}))
	t.Cleanup(srv.Close)

	client, err := gcalendar.NewClientFromHTTP(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return client, &got, &paths
}

func TestCreateEvent_AllDay(t *testing.T) {
	client, got, paths := newFakeCalendar(t, http.StatusOK)
	day := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	ev, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:     "wedding: Day 1 (Mehndi)",
		Description: "- Mehndi night",
		StartTime:   day,
		AllDay:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ev-1", ev.ID)
	assert.NotEmpty(t, ev.HtmlLink)
	assert.Equal(t, day.AddDate(0, 0, 1), ev.EndTime)

	require.Len(t, *got, 1)
	assert.Equal(t, "2025-06-13", (*got)[0].Start.Date)
	assert.Empty(t, (*got)[0].Start.DateTime)
	assert.Equal(t, "2025-06-14", (*got)[0].End.Date)
	assert.Equal(t, "/calendars/primary/events", (*paths)[0])
}

func TestCreateEvent_Errors(t *testing.T) {
	client, got, _ := newFakeCalendar(t, http.StatusForbidden)

	_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{})
	assert.ErrorContains(t, err, "summary is required")
	assert.Empty(t, *got)

	_, err = client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		CalendarID: "team",
		Summary:    "x",
		StartTime:  time.Now(),
		AllDay:     true,
	})
	require.Error(t, err)
	assert.False(t, errors.Is(err, gcalendar.ErrMissingToken))
	assert.ErrorContains(t, err, "create calendar event")
}

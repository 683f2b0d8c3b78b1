package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"event-planner/config"
)

func TestUseCaseConfig_PlannerTimezoneIsTheOnlyZone(t *testing.T) {
	cfg := &config.Config{
		Planner: config.PlannerConfig{
			Timezone:    "Asia/Karachi",
			Model:       "gemini-2.5-flash",
			TaskTimeout: 45 * time.Second,
		},
		Lookup:         config.LookupConfig{SearchLimit: 5},
		GoogleCalendar: config.GoogleCalendarConfig{Enabled: true, CalendarID: "events"},
	}

	got := useCaseConfig(cfg)

	assert.Equal(t, "Asia/Karachi", got.Timezone)
	assert.Equal(t, "events", got.CalendarID)
	assert.Equal(t, 5, got.SearchLimit)
	assert.Equal(t, 45*time.Second, got.TaskTimeout)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/gcalendar"
)

// publishCalendar creates one all-day calendar event per schedule day.
// Days that fail to publish are skipped; the task fails only when none was published.
func (uc *implUseCase) publishCalendar(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	start, ok := intent.StartDate()
	if !ok {
		return planner.Precondition("event_date is required to publish the schedule, got %q", intent.EventDate)
	}
	days, out, ok := upstreamValue[model.Schedule](up, model.SectionSchedule)
	if !ok {
		return out
	}

	entries := make([]model.CalendarEntry, 0, len(days))
	var lastErr error
	for i, date := range days.Dates(start) {
		day := days[i]
		summary := fmt.Sprintf("%s: %s", intent.EventType, day.DayLabel)

		callCtx, cancel := uc.callCtx(ctx)
		ev, err := uc.calendar.CreateEvent(callCtx, gcalendar.CreateEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			Summary:     summary,
			Description: activityList(day.Activities),
			Location:    intent.Location,
			StartTime:   start.AddDate(0, 0, i),
			EndTime:     start.AddDate(0, 0, i+1),
			AllDay:      true,
			Timezone:    uc.cfg.Timezone,
		})
		cancel()
		if err != nil {
			lastErr = err
			uc.l.Warnf(ctx, "%s: failed to publish %s (non-fatal): %v", model.SectionCalendar, date, err)
			continue
		}
		entries = append(entries, model.CalendarEntry{Date: date, Summary: summary, EventID: ev.ID, Link: ev.HtmlLink})
	}

	if len(entries) == 0 && lastErr != nil {
		return planner.Fail(ctx, lastErr)
	}
	return planner.Succeeded(entries)
}

func activityList(activities []string) string {
	var b strings.Builder
	for _, a := range activities {
		b.WriteString("- ")
		b.WriteString(a)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

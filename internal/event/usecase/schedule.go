package usecase

import (
	"context"
	"fmt"
	"strings"

	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/extract"
)

var errEmptySchedule = fmt.Errorf("%w: schedule has no days", extract.ErrMalformedOutput)

// schedule drafts the day-by-day itinerary. Its length fixes the event duration.
func (uc *implUseCase) schedule(ctx context.Context, intent model.Intent, _ planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}

	var days model.Schedule
	prompt := fmt.Sprintf(schedulePrompt, intent.EventType, intent.Location, orDefault(intent.EventDate, "a date to be decided"), guests(intent))
	if err := uc.ask(ctx, prompt, listTemperature, extract.ShapeList, &days); err != nil {
		return planner.Fail(ctx, err)
	}

	cleaned := make(model.Schedule, 0, len(days))
	for i, d := range days {
		d.DayLabel = strings.TrimSpace(d.DayLabel)
		if d.DayLabel == "" {
			d.DayLabel = fmt.Sprintf("Day %d", i+1)
		}
		if d.Activities == nil {
			d.Activities = []string{}
		}
		cleaned = append(cleaned, d)
	}
	if len(cleaned) == 0 {
		return planner.Failed(planner.KindMalformedOutput, errEmptySchedule)
	}
	return planner.Succeeded(cleaned)
}

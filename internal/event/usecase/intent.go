package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"event-planner/internal/event"
	"event-planner/internal/model"
	"event-planner/pkg/extract"
)

// ExtractIntent asks the model for the structured request and normalizes it.
func (uc *implUseCase) ExtractIntent(ctx context.Context, input event.ExtractIntentInput) (model.Intent, error) {
	text := strings.TrimSpace(input.RawText)
	if text == "" {
		return model.Intent{}, event.ErrEmptyInput
	}

	now := uc.now().In(uc.dateMath.Location())
	prompt := fmt.Sprintf(intentPrompt, now.Format(model.DateLayout), text)

	reply, err := uc.llm.Complete(ctx, prompt, uc.options(intentTemperature))
	if err != nil {
		return model.Intent{}, fmt.Errorf("%w: %w", event.ErrIntentExtraction, err)
	}

	var raw rawIntent
	if err := extract.Into(reply, extract.ShapeObject, &raw); err != nil {
		uc.l.Warnf(ctx, "ExtractIntent: unusable model reply %q: %v", reply, err)
		return model.Intent{}, fmt.Errorf("%w: %w", event.ErrIntentExtraction, err)
	}

	intent := raw.toIntent()
	intent.EventDate = uc.normalizeDate(ctx, intent.EventDate)

	if err := intent.Validate(); err != nil {
		return model.Intent{}, fmt.Errorf("%w: %w", event.ErrInvalidIntent, err)
	}

	uc.l.Infof(ctx, "ExtractIntent: event_type=%q location=%q event_date=%q guests=%d",
		intent.EventType, intent.Location, intent.EventDate, intent.GuestCount)
	return intent, nil
}

// normalizeDate rewrites a date expression as YYYY-MM-DD. Unrecognized dates are dropped.
func (uc *implUseCase) normalizeDate(ctx context.Context, expr string) string {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return ""
	}
	date, err := uc.dateMath.Normalize(expr, uc.now())
	if err != nil {
		uc.l.Warnf(ctx, "ExtractIntent: dropping event_date %q: %v", expr, err)
		return ""
	}
	return date
}

// rawIntent mirrors the model's reply, tolerating numbers and booleans sent as strings.
type rawIntent struct {
	EventType      string         `json:"event_type"`
	Location       string         `json:"location"`
	EventDate      string         `json:"event_date"`
	GuestCount     looseInt       `json:"guest_count"`
	Preferences    map[string]any `json:"preferences"`
	EventTheme     string         `json:"event_theme"`
	MealCount      looseInt       `json:"meal_count"`
	TransportNeeds string         `json:"transport_needs"`
	Sightseeing    *looseBool     `json:"sightseeing"`
}

func (r rawIntent) toIntent() model.Intent {
	intent := model.Intent{
		EventType:      strings.TrimSpace(r.EventType),
		Location:       strings.TrimSpace(r.Location),
		EventDate:      strings.TrimSpace(r.EventDate),
		GuestCount:     int(r.GuestCount),
		Preferences:    r.Preferences,
		EventTheme:     strings.TrimSpace(r.EventTheme),
		MealCount:      int(r.MealCount),
		TransportNeeds: strings.TrimSpace(r.TransportNeeds),
	}
	if r.Sightseeing != nil {
		b := bool(*r.Sightseeing)
		intent.Sightseeing = &b
	}
	if len(intent.Preferences) == 0 {
		intent.Preferences = nil
	}
	return intent
}

// looseInt accepts 300, 300.0, "300" and "about 300"; anything else is zero.
type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case float64:
		*n = looseInt(t)
	case string:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, t)
		i, err := strconv.Atoi(digits)
		if err != nil {
			*n = 0
			return nil
		}
		*n = looseInt(i)
	default:
		*n = 0
	}
	return nil
}

// looseBool accepts true/false and the strings yes/no/true/false.
type looseBool bool

func (v *looseBool) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case bool:
		*v = looseBool(t)
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes", "true", "y":
			*v = true
		default:
			*v = false
		}
	default:
		*v = false
	}
	return nil
}

package event

import (
	"time"

	"event-planner/internal/model"
)

// PlanEventInput is the input for a planning run.
// When Intent is set the extraction step is skipped and RawText may be empty.
type PlanEventInput struct {
	RawText string
	Intent  *model.Intent
}

// PlanEventOutput is the result of a planning run.
type PlanEventOutput struct {
	Plan     model.Plan
	Duration time.Duration
}

// ExtractIntentInput is the input for intent extraction.
type ExtractIntentInput struct {
	RawText string
}

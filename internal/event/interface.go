package event

import (
	"context"

	"event-planner/internal/model"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// PlanEvent extracts the intent from free text (unless one is supplied) and runs the full planning pipeline.
	// Section failures are reported inside the plan; an error means no plan could be built at all.
	PlanEvent(ctx context.Context, input PlanEventInput) (PlanEventOutput, error)

	// ExtractIntent turns free text into a validated Intent without running any section task.
	ExtractIntent(ctx context.Context, input ExtractIntentInput) (model.Intent, error)
}

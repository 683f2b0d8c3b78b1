package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"event-planner/internal/event"
	"event-planner/internal/model"
	"event-planner/internal/planner"
	pkgLog "event-planner/pkg/log"
)

// PlanEvent extracts the intent, runs every section task and assembles the plan.
func (uc *implUseCase) PlanEvent(ctx context.Context, input event.PlanEventInput) (event.PlanEventOutput, error) {
	started := time.Now()

	intent, err := uc.resolveIntent(ctx, input)
	if err != nil {
		return event.PlanEventOutput{}, err
	}

	runID := uuid.NewString()
	ctx = pkgLog.WithRunID(ctx, runID)
	uc.l.Infof(ctx, "PlanEvent: planning %s in %s", intent.EventType, intent.Location)

	descriptors := uc.descriptors()
	rg, err := uc.orchestrator.Execute(ctx, intent, descriptors)
	if err != nil {
		return event.PlanEventOutput{}, fmt.Errorf("%w: %w", event.ErrInvalidGraph, err)
	}

	plan := planner.Assemble(intent, descriptors, rg)
	plan.RunID = runID

	elapsed := time.Since(started)
	uc.l.Infof(ctx, "PlanEvent: done in %s details=%d summaries=%d failures=%d",
		elapsed, len(plan.Details), len(plan.Summary), len(plan.Failures))

	return event.PlanEventOutput{Plan: plan, Duration: elapsed}, nil
}

// resolveIntent uses the caller's intent when given, otherwise extracts one.
func (uc *implUseCase) resolveIntent(ctx context.Context, input event.PlanEventInput) (model.Intent, error) {
	if input.Intent == nil {
		return uc.ExtractIntent(ctx, event.ExtractIntentInput{RawText: input.RawText})
	}

	intent := *input.Intent
	intent.EventDate = uc.normalizeDate(ctx, intent.EventDate)
	if err := intent.Validate(); err != nil {
		return model.Intent{}, fmt.Errorf("%w: %w", event.ErrInvalidIntent, err)
	}
	return intent, nil
}

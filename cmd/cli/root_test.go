package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planner/internal/event"
	"event-planner/internal/model"
)

type fakeUseCase struct {
	text string
	err  error
}

func (f *fakeUseCase) PlanEvent(ctx context.Context, in event.PlanEventInput) (event.PlanEventOutput, error) {
	f.text = in.RawText
	return event.PlanEventOutput{Plan: model.Plan{
		RunID:   "run-1",
		Intent:  model.Intent{EventType: "wedding", Location: "Lahore"},
		Summary: map[string]model.Digest{"venues": {"top": "Royal Palm"}},
		Details: map[string]any{"venues": []model.PlaceGroup{}},
	}}, f.err
}

func (f *fakeUseCase) ExtractIntent(ctx context.Context, in event.ExtractIntentInput) (model.Intent, error) {
	f.text = in.RawText
	return model.Intent{EventType: "party", Location: "Karachi"}, f.err
}

func run(t *testing.T, uc *fakeUseCase, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func(context.Context) (event.UseCase, error) { return uc, nil })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlanCmd(t *testing.T) {
	uc := &fakeUseCase{}
	out, err := run(t, uc, "", "plan", "wedding", "in", "Lahore")
	require.NoError(t, err)
	assert.Equal(t, "wedding in Lahore", uc.text)

	var plan model.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, "run-1", plan.RunID)
	assert.Contains(t, plan.Details, "venues")
}

func TestPlanCmd_SummaryFromStdin(t *testing.T) {
	uc := &fakeUseCase{}
	out, err := run(t, uc, "wedding in Lahore\n", "plan", "--summary", "--compact")
	require.NoError(t, err)
	assert.Equal(t, "wedding in Lahore", uc.text)
	assert.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Contains(t, body, "summary")
	assert.NotContains(t, body, "details")
}

func TestIntentCmd(t *testing.T) {
	out, err := run(t, &fakeUseCase{}, "", "intent", "party in Karachi")
	require.NoError(t, err)

	var intent model.Intent
	require.NoError(t, json.Unmarshal([]byte(out), &intent))
	assert.Equal(t, "Karachi", intent.Location)
}

func TestCmd_Errors(t *testing.T) {
	_, err := run(t, &fakeUseCase{}, "   ", "intent")
	assert.ErrorIs(t, err, errNoText)

	_, err = run(t, &fakeUseCase{err: event.ErrInvalidIntent}, "", "plan", "something")
	assert.ErrorIs(t, err, event.ErrInvalidIntent)

	cmd := newRootCmd(func(context.Context) (event.UseCase, error) { return nil, errors.New("no config") })
	cmd.SetArgs([]string{"intent", "x"})
	cmd.SetOut(&bytes.Buffer{})
	assert.ErrorContains(t, cmd.ExecuteContext(context.Background()), "no config")
}

func TestCalendarAuthCmd_MissingCredentials(t *testing.T) {
	_, err := run(t, &fakeUseCase{}, "", "calendar-auth", "--credentials", t.TempDir()+"/nope.json")
	assert.ErrorContains(t, err, "read credentials")
}

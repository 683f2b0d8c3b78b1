package http

import (
	"errors"
	"strings"
	"time"

	"event-planner/internal/event"
	"event-planner/internal/model"
	"event-planner/pkg/response"
)

var errTextOrIntent = errors.New("either text or intent is required")

// --- Request DTOs ---

type planReq struct {
	Text   string        `json:"text"   binding:"max=4000"`
	Intent *model.Intent `json:"intent"`
}

func (r planReq) validate() error {
	if strings.TrimSpace(r.Text) == "" && r.Intent == nil {
		return errTextOrIntent
	}
	return nil
}

func (r planReq) toInput() event.PlanEventInput {
	return event.PlanEventInput{
		RawText: r.Text,
		Intent:  r.Intent,
	}
}

// ---

type intentReq struct {
	Text string `json:"text" binding:"required,max=4000"`
}

func (r intentReq) validate() error { return nil }

func (r intentReq) toInput() event.ExtractIntentInput {
	return event.ExtractIntentInput{RawText: r.Text}
}

// --- Response DTOs ---

type failureResp struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type planResp struct {
	RunID       string                  `json:"run_id"`
	Intent      model.Intent            `json:"intent"`
	Summary     map[string]model.Digest `json:"summary"`
	Details     map[string]any          `json:"details"`
	Failures    map[string]failureResp  `json:"failures,omitempty"`
	DurationMS  int64                   `json:"duration_ms"`
	GeneratedAt response.DateTime       `json:"generated_at"`
}

func (h *handler) newPlanResp(out event.PlanEventOutput) planResp {
	resp := planResp{
		RunID:       out.Plan.RunID,
		Intent:      out.Plan.Intent,
		Summary:     out.Plan.Summary,
		Details:     out.Plan.Details,
		DurationMS:  out.Duration.Milliseconds(),
		GeneratedAt: response.DateTime(time.Now()),
	}
	if len(out.Plan.Failures) > 0 {
		resp.Failures = make(map[string]failureResp, len(out.Plan.Failures))
		for name, f := range out.Plan.Failures {
			resp.Failures[name] = failureResp{Kind: f.Kind, Message: f.Message}
		}
	}
	return resp
}

type intentResp struct {
	Intent model.Intent `json:"intent"`
}

func (h *handler) newIntentResp(intent model.Intent) intentResp {
	return intentResp{Intent: intent}
}

package planner

import (
	"event-planner/internal/model"
)

// Assemble reshapes a finished run into a Plan. Details hold the value of every succeeded
// ordinary task; Summary holds one digest per declared summarizer, keyed by section, with
// the unavailable sentinel where the summarizer failed.
func Assemble(intent model.Intent, descriptors []Descriptor, rg *ResultGraph) model.Plan {
	plan := model.Plan{
		Intent:   intent,
		Summary:  make(map[string]model.Digest),
		Details:  make(map[string]any),
		Failures: make(map[string]model.Failure),
	}

	for _, d := range descriptors {
		out, ok := Output{}, false
		if rg != nil {
			out, ok = rg.Get(d.Name)
		}
		if !ok {
			out = Failed(KindCancelled, ErrRunCancelled)
		}

		if !out.OK() {
			plan.Failures[d.Name] = model.Failure{Kind: string(out.Kind), Message: errString(out.Err)}
		}

		if d.IsSummarizer() {
			if digest, ok := asDigest(out); ok {
				plan.Summary[d.Summarizes] = digest
			} else {
				reason := out.Kind
				if out.OK() {
					reason = KindMalformedOutput
				}
				plan.Summary[d.Summarizes] = model.UnavailableDigest(string(reason))
			}
			continue
		}

		if out.OK() {
			plan.Details[d.Name] = out.Value
		}
	}

	if len(plan.Failures) == 0 {
		plan.Failures = nil
	}
	return plan
}

func asDigest(out Output) (model.Digest, bool) {
	if !out.OK() {
		return nil, false
	}
	switch v := out.Value.(type) {
	case model.Digest:
		return v, v != nil
	case map[string]any:
		return model.Digest(v), v != nil
	default:
		return nil, false
	}
}

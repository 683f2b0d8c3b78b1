package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"event-planner/internal/model"
	"event-planner/pkg/extract"
	"event-planner/pkg/llmprovider"
)

const summarySuffix = ".summary"

const summaryPrompt = `You are an event planning assistant.
Condense the %s section of a %s plan in %s into a short digest for the organizer.
Keep only the top 2 or 3 recommendations and the facts needed to act on them.

Section data (JSON):
%s

Respond with a single JSON object and nothing else.`

// SummaryName is the task name of the summarizer for section.
func SummaryName(section string) string {
	return section + summarySuffix
}

// Summarizer declares a task condensing the output of upstream into a digest for section.
func Summarizer(section, upstream string, client llmprovider.Completer, opts llmprovider.Options) Descriptor {
	return Descriptor{
		Name:       SummaryName(section),
		Upstream:   []string{upstream},
		Summarizes: section,
		Produce: func(ctx context.Context, intent model.Intent, up Upstream) Output {
			src, ok := up[upstream]
			if !ok || !src.OK() {
				return UpstreamFailed(upstream)
			}

			payload, err := json.MarshalIndent(src.Value, "", "  ")
			if err != nil {
				return Failed(KindInternal, fmt.Errorf("encode %s: %w", upstream, err))
			}

			prompt := fmt.Sprintf(summaryPrompt, section, intent.EventType, intent.Location, payload)
			text, err := client.Complete(ctx, prompt, opts)
			if err != nil {
				return Fail(ctx, err)
			}

			var digest model.Digest
			if err := extract.Into(text, extract.ShapeObject, &digest); err != nil {
				return Failed(KindMalformedOutput, err)
			}
			return Succeeded(digest)
		},
	}
}

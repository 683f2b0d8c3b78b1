package usecase

import (
	"context"
	"fmt"

	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/extract"
)

// venues asks for suitable venue types and searches each one around the event location.
func (uc *implUseCase) venues(ctx context.Context, intent model.Intent, _ planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}

	var kinds []string
	prompt := fmt.Sprintf(venueTypesPrompt, intent.EventType, guests(intent), intent.Location)
	if err := uc.ask(ctx, prompt, listTemperature, extract.ShapeList, &kinds); err != nil {
		return planner.Fail(ctx, err)
	}

	return planner.Succeeded(uc.searchGroups(ctx, model.SectionVenues, placeQueries(uniqueLabels(kinds), intent.Location, "")))
}

// vendors asks for the vendor types the event needs and searches each one.
func (uc *implUseCase) vendors(ctx context.Context, intent model.Intent, _ planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}

	var kinds []string
	prompt := fmt.Sprintf(vendorTypesPrompt, intent.EventType)
	if err := uc.ask(ctx, prompt, listTemperature, extract.ShapeList, &kinds); err != nil {
		return planner.Fail(ctx, err)
	}

	return planner.Succeeded(uc.searchGroups(ctx, model.SectionVendors, placeQueries(uniqueLabels(kinds), intent.Location, "")))
}

// placeQueries builds one sub-query per label; suffix is appended to the search phrase.
func placeQueries(labels []string, location, suffix string) []subQuery {
	queries := make([]subQuery, 0, len(labels))
	for _, label := range labels {
		query := label
		if suffix != "" {
			query = label + " " + suffix
		}
		queries = append(queries, subQuery{label: label, query: query, location: location})
	}
	return queries
}

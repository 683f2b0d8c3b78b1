package usecase

import (
	"context"
	"fmt"
	"strings"

	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/extract"
)

// transportation plans transfers, shuttles and parking around the venues and schedule.
func (uc *implUseCase) transportation(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	venues, out, ok := upstreamValue[[]model.PlaceGroup](up, model.SectionVenues)
	if !ok {
		return out
	}
	days, out, ok := upstreamValue[model.Schedule](up, model.SectionSchedule)
	if !ok {
		return out
	}

	var plan map[string]any
	prompt := fmt.Sprintf(transportPrompt, intent.EventType, intent.Location, guests(intent),
		orDefault(intent.TransportNeeds, "none stated"), jsonText(venues), jsonText(days))
	if err := uc.ask(ctx, prompt, listTemperature, extract.ShapeObject, &plan); err != nil {
		return planner.Fail(ctx, err)
	}
	return planner.Succeeded(plan)
}

// hotels searches lodging around the top venue of each venue group.
func (uc *implUseCase) hotels(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	venues, out, ok := upstreamValue[[]model.PlaceGroup](up, model.SectionVenues)
	if !ok {
		return out
	}

	return planner.Succeeded(uc.searchGroups(ctx, model.SectionHotels, hotelQueries(venues, intent.Location)))
}

// hotelQueries anchors one hotel search on each distinct top venue, falling back to the event location.
func hotelQueries(venues []model.PlaceGroup, location string) []subQuery {
	seen := make(map[string]struct{})
	var queries []subQuery
	for _, g := range venues {
		if len(g.Options) == 0 || len(queries) == maxHotelAnchors {
			continue
		}
		top := g.Options[0]
		key := strings.ToLower(top.Name)
		if _, dup := seen[key]; dup || top.Name == "" {
			continue
		}
		seen[key] = struct{}{}
		near := top.Address
		if near == "" {
			near = top.Name + ", " + location
		}
		queries = append(queries, subQuery{label: top.Name, query: "hotel", location: near})
	}
	if len(queries) == 0 {
		queries = append(queries, subQuery{label: location, query: "hotel", location: location})
	}
	return queries
}

// sightseeing picks attraction kinds for the free slots and searches each one.
func (uc *implUseCase) sightseeing(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	days, out, ok := upstreamValue[model.Schedule](up, model.SectionSchedule)
	if !ok {
		return out
	}
	if intent.Sightseeing != nil && !*intent.Sightseeing {
		uc.l.Infof(ctx, "%s: organizer opted out", model.SectionSightseeing)
		return planner.Succeeded([]model.PlaceGroup{})
	}

	var kinds []string
	prompt := fmt.Sprintf(sightseeingPrompt, intent.Location, intent.EventType, jsonText(days))
	if err := uc.ask(ctx, prompt, creativeTemperature, extract.ShapeList, &kinds); err != nil {
		return planner.Fail(ctx, err)
	}

	return planner.Succeeded(uc.searchGroups(ctx, model.SectionSightseeing, placeQueries(uniqueLabels(kinds), intent.Location, "")))
}

// catering drafts a meal plan from the schedule and finds caterers for every sitting.
func (uc *implUseCase) catering(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	days, out, ok := upstreamValue[model.Schedule](up, model.SectionSchedule)
	if !ok {
		return out
	}

	var mealPlan map[string]any
	prompt := fmt.Sprintf(mealPlanPrompt, intent.EventType, intent.Location, guests(intent), jsonText(days))
	if err := uc.ask(ctx, prompt, creativeTemperature, extract.ShapeObject, &mealPlan); err != nil {
		return planner.Fail(ctx, err)
	}

	groups := uc.searchGroups(ctx, model.SectionCatering, placeQueries(meals, intent.Location, "catering"))
	caterers := make(map[string][]model.Place, len(groups))
	for _, g := range groups {
		caterers[g.Type] = g.Options
	}
	return planner.Succeeded(model.CateringPlan{MealPlan: mealPlan, Caterers: caterers})
}

// theme proposes a look and feel that fits the candidate venues.
func (uc *implUseCase) theme(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	venues, out, ok := upstreamValue[[]model.PlaceGroup](up, model.SectionVenues)
	if !ok {
		return out
	}

	var theme map[string]any
	prompt := fmt.Sprintf(themePrompt, intent.EventType, intent.Location, intent.EventTheme, jsonText(venues))
	if err := uc.ask(ctx, prompt, creativeTemperature, extract.ShapeObject, &theme); err != nil {
		return planner.Fail(ctx, err)
	}
	return planner.Succeeded(theme)
}

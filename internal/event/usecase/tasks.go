package usecase

import (
	"context"
	"encoding/json"
	"strconv"

	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/extract"
)

// descriptors declares the planning graph. Section tasks are keyed by section name;
// every summarized section gets a summarizer reading that task.
func (uc *implUseCase) descriptors() []planner.Descriptor {
	ds := []planner.Descriptor{
		{Name: model.SectionVenues, Produce: uc.venues},
		{Name: model.SectionVendors, Produce: uc.vendors},
		{Name: model.SectionSchedule, Produce: uc.schedule},
		{Name: model.SectionTransportation, Upstream: []string{model.SectionVenues, model.SectionSchedule}, Produce: uc.transportation},
		{Name: model.SectionHotels, Upstream: []string{model.SectionVenues}, Produce: uc.hotels},
		{Name: model.SectionSightseeing, Upstream: []string{model.SectionSchedule}, Produce: uc.sightseeing},
		{Name: model.SectionCatering, Upstream: []string{model.SectionSchedule}, Produce: uc.catering},
		{Name: model.SectionTheme, Upstream: []string{model.SectionVenues}, Produce: uc.theme},
		{Name: model.SectionWeather, Upstream: []string{model.SectionSchedule}, Produce: uc.weatherForecast},
	}
	if uc.calendar != nil {
		ds = append(ds, planner.Descriptor{
			Name:     model.SectionCalendar,
			Upstream: []string{model.SectionSchedule},
			Produce:  uc.publishCalendar,
		})
	}
	for _, section := range summarizedSections {
		ds = append(ds, planner.Summarizer(section, section, uc.llm, uc.options(uc.cfg.Temperature)))
	}
	return ds
}

// ask sends prompt and decodes the reply of the given shape into dst.
func (uc *implUseCase) ask(ctx context.Context, prompt string, temperature float64, shape extract.Shape, dst any) error {
	reply, err := uc.llm.Complete(ctx, prompt, uc.options(temperature))
	if err != nil {
		return err
	}
	return extract.Into(reply, shape, dst)
}

// requireBasics fails the task when the intent lacks event_type or location.
func requireBasics(intent model.Intent) (planner.Output, bool) {
	if err := intent.Validate(); err != nil {
		return planner.Precondition("%v", err), false
	}
	return planner.Output{}, true
}

// upstreamValue returns the typed value of a succeeded upstream.
func upstreamValue[T any](up planner.Upstream, name string) (T, planner.Output, bool) {
	v, ok := planner.Value[T](up, name)
	if !ok {
		return v, planner.UpstreamFailed(name), false
	}
	return v, planner.Output{}, true
}

func jsonText(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "null"
	}
	return string(b)
}

func guests(intent model.Intent) string {
	if intent.GuestCount <= 0 {
		return "an unknown number of"
	}
	return strconv.Itoa(intent.GuestCount)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

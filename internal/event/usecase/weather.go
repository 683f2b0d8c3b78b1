package usecase

import (
	"context"

	"event-planner/internal/lookup"
	"event-planner/internal/model"
	"event-planner/internal/planner"
)

// weatherForecast fetches the daily forecast for each schedule day starting at event_date.
// Days the service does not cover are left out; the result keeps schedule order.
func (uc *implUseCase) weatherForecast(ctx context.Context, intent model.Intent, up planner.Upstream) planner.Output {
	if out, ok := requireBasics(intent); !ok {
		return out
	}
	start, ok := intent.StartDate()
	if !ok {
		return planner.Precondition("event_date is required for the forecast, got %q", intent.EventDate)
	}
	days, out, ok := upstreamValue[model.Schedule](up, model.SectionSchedule)
	if !ok {
		return out
	}
	if len(days) == 0 {
		return planner.Precondition("schedule has no days")
	}

	dates := days.Dates(start)

	geoCtx, cancel := uc.callCtx(ctx)
	lat, lng, err := uc.geocoder.Geocode(geoCtx, intent.Location)
	cancel()
	if err != nil {
		return planner.Fail(ctx, err)
	}

	fcCtx, cancel := uc.callCtx(ctx)
	series, err := uc.weather.Forecast(fcCtx, lat, lng, lookup.DateRange{
		Start: start,
		End:   start.AddDate(0, 0, len(days)-1),
	})
	cancel()
	if err != nil {
		return planner.Fail(ctx, err)
	}

	return planner.Succeeded(filterForecast(series, dates))
}

// filterForecast keeps the series entries matching dates, in the order of dates.
func filterForecast(series []model.ForecastDay, dates []string) []model.ForecastDay {
	byDate := make(map[string]model.ForecastDay, len(series))
	for _, d := range series {
		if _, dup := byDate[d.Date]; !dup {
			byDate[d.Date] = d
		}
	}
	out := make([]model.ForecastDay, 0, len(dates))
	for _, date := range dates {
		if d, ok := byDate[date]; ok {
			out = append(out, d)
		}
	}
	return out
}

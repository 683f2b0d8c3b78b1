package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-planner/internal/model"
	"event-planner/pkg/geocode"
	"event-planner/pkg/openmeteo"
	"event-planner/pkg/places"
)

type placeSearcher struct {
	client places.IPlaces
}

// NewPlaceSearcher adapts the Places client to Searcher.
func NewPlaceSearcher(client places.IPlaces) Searcher {
	return placeSearcher{client: client}
}

func (s placeSearcher) Search(ctx context.Context, query, location string, limit int) ([]model.Place, error) {
	found, err := s.client.TextSearch(ctx, searchQuery(query, location), limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.Place, 0, len(found))
	for _, p := range found {
		out = append(out, model.Place{
			Name:    p.Name,
			Rating:  p.Rating,
			Address: p.Address,
			Phone:   p.Phone,
			Website: p.Website,
		})
	}
	return out, nil
}

func searchQuery(query, location string) string {
	query = strings.TrimSpace(query)
	location = strings.TrimSpace(location)
	if location == "" {
		return query
	}
	return fmt.Sprintf("%s near %s", query, location)
}

type googleGeocoder struct {
	client *geocode.Client
}

// NewGeocoder adapts the Geocoding client to Geocoder.
func NewGeocoder(client *geocode.Client) Geocoder {
	return googleGeocoder{client: client}
}

func (g googleGeocoder) Geocode(ctx context.Context, location string) (float64, float64, error) {
	c, err := g.client.Geocode(ctx, location)
	if err != nil {
		return 0, 0, err
	}
	return c.Lat, c.Lng, nil
}

type openMeteoForecaster struct {
	client  *openmeteo.Client
	horizon int
	loc     *time.Location
	now     func() time.Time
}

// NewForecaster adapts the Open-Meteo client to Forecaster. Days past horizonDays from today
// in loc are not requested; zero means no limit. A nil loc means UTC.
func NewForecaster(client *openmeteo.Client, horizonDays int, loc *time.Location) Forecaster {
	if loc == nil {
		loc = time.UTC
	}
	return openMeteoForecaster{client: client, horizon: horizonDays, loc: loc, now: time.Now}
}

// today is the current calendar date in f.loc, at midnight UTC like DateRange bounds.
func (f openMeteoForecaster) today() time.Time {
	y, m, d := f.now().In(f.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (f openMeteoForecaster) Forecast(ctx context.Context, lat, lng float64, days DateRange) ([]model.ForecastDay, error) {
	if f.horizon > 0 {
		last := f.today().AddDate(0, 0, f.horizon-1)
		if days.Start.After(last) {
			return []model.ForecastDay{}, nil
		}
		if days.End.After(last) {
			days.End = last
		}
	}

	daily, err := f.client.Daily(ctx, lat, lng, days.Start, days.End)
	if err != nil {
		return nil, err
	}
	out := make([]model.ForecastDay, 0, len(daily))
	for _, d := range daily {
		out = append(out, model.ForecastDay{
			Date:      d.Date,
			MinTemp:   d.MinTemp,
			MaxTemp:   d.MaxTemp,
			Condition: openmeteo.Describe(d.WeatherCode),
		})
	}
	return out, nil
}

package lookup

import (
	"context"
	"time"

	"event-planner/internal/model"
)

// Searcher finds businesses for a free-text query around a location.
// An empty slice is a valid answer.
type Searcher interface {
	Search(ctx context.Context, query, location string, limit int) ([]model.Place, error)
}

// Geocoder resolves a location name to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, location string) (lat, lng float64, err error)
}

// Forecaster returns the daily forecast for a point over a range of days.
type Forecaster interface {
	Forecast(ctx context.Context, lat, lng float64, days DateRange) ([]model.ForecastDay, error)
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

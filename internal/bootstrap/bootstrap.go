// Package bootstrap builds the event use case and its collaborators from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"event-planner/config"
	"event-planner/internal/event"
	"event-planner/internal/event/usecase"
	"event-planner/internal/lookup"
	"event-planner/internal/planner"
	"event-planner/pkg/datemath"
	"event-planner/pkg/gcalendar"
	"event-planner/pkg/geocode"
	"event-planner/pkg/llmprovider"
	"event-planner/pkg/log"
	"event-planner/pkg/openmeteo"
	"event-planner/pkg/places"
)

const lookupHTTPTimeout = 20 * time.Second

// NewEventUseCase wires the LLM fallback chain, the lookup clients and the orchestrator.
// The calendar export is optional: a failure to initialize it is logged and the section is left out.
func NewEventUseCase(ctx context.Context, cfg *config.Config, l log.Logger) (event.UseCase, error) {
	// 1. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	retryDelay, err := cfg.LLM.RetryDelayDuration()
	if err != nil {
		return nil, err
	}
	maxTotal, err := cfg.LLM.MaxTotalTimeoutDuration()
	if err != nil {
		return nil, err
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled:   cfg.LLM.FallbackEnabled,
		RetryAttempts:     cfg.LLM.RetryAttempts,
		RetryDelay:        retryDelay,
		MaxTotalTimeout:   maxTotal,
		RequestsPerMinute: cfg.LLM.RequestsPerMinute,
	}, l)
	for _, p := range providers {
		l.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	// 2. Lookup clients
	httpClient := &http.Client{Timeout: lookupHTTPTimeout}
	placesClient, err := places.New(places.Config{APIKey: cfg.Google.APIKey, BaseURL: cfg.Google.PlacesURL, HTTPClient: httpClient})
	if err != nil {
		return nil, fmt.Errorf("places: %w", err)
	}
	geocodeClient, err := geocode.New(geocode.Config{APIKey: cfg.Google.APIKey, URL: cfg.Google.GeocodeURL, HTTPClient: httpClient})
	if err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	weatherClient := openmeteo.New(openmeteo.Config{URL: cfg.Weather.OpenMeteoURL, HTTPClient: httpClient})

	cacheCfg := lookup.CacheConfig{Size: cfg.Lookup.CacheSize, TTL: cfg.Lookup.CacheTTL}
	searcher := lookup.NewCachedSearcher(lookup.NewPlaceSearcher(placesClient), cacheCfg)
	geocoder := lookup.NewCachedGeocoder(lookup.NewGeocoder(geocodeClient), cacheCfg)

	// 3. DateMath parser; planner.timezone is the single zone for dates
	dateMath, err := datemath.NewParser(cfg.Planner.Timezone)
	if err != nil {
		return nil, err
	}
	forecaster := lookup.NewForecaster(weatherClient, cfg.Weather.ForecastDays, dateMath.Location())

	// 4. Google Calendar (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.Enabled {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, gcalendar.Credentials{
			Path:      cfg.GoogleCalendar.CredentialsPath,
			TokenPath: cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			l.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			l.Info(ctx, "Google Calendar export enabled")
		}
	}

	// 5. Orchestrator
	orchestrator := planner.New(l, planner.Config{
		MaxConcurrency: cfg.Planner.MaxConcurrency,
		RunTimeout:     cfg.Planner.RunTimeout,
	})

	return usecase.New(l, llm, searcher, geocoder, forecaster, calendar, orchestrator, dateMath, useCaseConfig(cfg)), nil
}

func useCaseConfig(cfg *config.Config) usecase.Config {
	return usecase.Config{
		Model:       cfg.Planner.Model,
		Temperature: cfg.Planner.Temperature,
		MaxTokens:   cfg.Planner.MaxTokens,
		TaskTimeout: cfg.Planner.TaskTimeout,
		SearchLimit: cfg.Lookup.SearchLimit,
		Timezone:    cfg.Planner.Timezone,
		CalendarID:  cfg.GoogleCalendar.CalendarID,
	}
}

// Package openmeteo fetches daily forecasts from the Open-Meteo API.
package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultURL is the Open-Meteo forecast endpoint
	DefaultURL = "https://api.open-meteo.com/v1/forecast"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	dateLayout  = "2006-01-02"
	dailySeries = "temperature_2m_min,temperature_2m_max,weathercode"
)

// ErrMismatchedSeries means the daily arrays in a response differ in length.
var ErrMismatchedSeries = errors.New("openmeteo: daily series lengths differ")

// Config holds Open-Meteo client configuration. The API needs no key.
type Config struct {
	URL        string
	HTTPClient *http.Client
}

// Day is one forecast day.
type Day struct {
	Date        string
	MinTemp     float64
	MaxTemp     float64
	WeatherCode int
}

// Client calls the forecast endpoint. Safe for concurrent use.
type Client struct {
	url        string
	httpClient *http.Client
}

// New creates an Open-Meteo client
func New(cfg Config) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{url: cfg.URL, httpClient: cfg.HTTPClient}
}

type forecastResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		TempMin     []float64 `json:"temperature_2m_min"`
		TempMax     []float64 `json:"temperature_2m_max"`
		WeatherCode []int     `json:"weathercode"`
	} `json:"daily"`
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// Daily returns the daily series between start and end inclusive, in the location's timezone.
func (c *Client) Daily(ctx context.Context, lat, lng float64, start, end time.Time) ([]Day, error) {
	params := url.Values{
		"latitude":   {strconv.FormatFloat(lat, 'f', 4, 64)},
		"longitude":  {strconv.FormatFloat(lng, 'f', 4, 64)},
		"daily":      {dailySeries},
		"timezone":   {"auto"},
		"start_date": {start.Format(dateLayout)},
		"end_date":   {end.Format(dateLayout)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: failed to read response: %w", err)
	}

	var body forecastResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("openmeteo: failed to decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || body.Error {
		return nil, fmt.Errorf("openmeteo: API error %d: %s", resp.StatusCode, body.Reason)
	}

	d := body.Daily
	if len(d.TempMin) != len(d.Time) || len(d.TempMax) != len(d.Time) || len(d.WeatherCode) != len(d.Time) {
		return nil, ErrMismatchedSeries
	}

	days := make([]Day, len(d.Time))
	for i := range d.Time {
		days[i] = Day{Date: d.Time[i], MinTemp: d.TempMin[i], MaxTemp: d.TempMax[i], WeatherCode: d.WeatherCode[i]}
	}
	return days, nil
}

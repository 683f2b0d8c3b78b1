// Package geocode resolves place names to coordinates through the Google Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultURL is the Geocoding API endpoint
	DefaultURL = "https://maps.googleapis.com/maps/api/geocode/json"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrMissingAPIKey is returned by New when no API key is configured.
	ErrMissingAPIKey = errors.New("geocode: API key is required")
	// ErrNotFound means the address matched nothing.
	ErrNotFound = errors.New("geocode: no results for address")
)

// Config holds Geocoding client configuration
type Config struct {
	APIKey     string
	URL        string
	HTTPClient *http.Client
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Client calls the Geocoding API. Safe for concurrent use.
type Client struct {
	apiKey     string
	url        string
	httpClient *http.Client
}

// New creates a Geocoding client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{apiKey: cfg.APIKey, url: cfg.URL, httpClient: cfg.HTTPClient}, nil
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the coordinates of the best match for address.
func (c *Client) Geocode(ctx context.Context, address string) (Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Coordinates{}, fmt.Errorf("geocode: empty address")
	}

	params := url.Values{"address": {address}, "key": {c.apiKey}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"?"+params.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Coordinates{}, fmt.Errorf("geocode: API error %d: %s", resp.StatusCode, string(raw))
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Coordinates{}, fmt.Errorf("geocode: failed to decode response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return Coordinates{}, fmt.Errorf("%w: %s", ErrNotFound, address)
	default:
		return Coordinates{}, fmt.Errorf("geocode: status %s: %s", body.Status, body.ErrorMessage)
	}
	if len(body.Results) == 0 {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrNotFound, address)
	}

	loc := body.Results[0].Geometry.Location
	return Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

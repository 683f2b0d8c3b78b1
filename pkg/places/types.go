package places

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("places: API key is required")

// Config holds Places client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Place is a business with its contact details.
type Place struct {
	PlaceID string
	Name    string
	Rating  float64
	Address string
	Phone   string
	Website string
}

// StatusError is a non-OK status in an otherwise successful response.
type StatusError struct {
	Endpoint string
	Status   string
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places: %s returned %s", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("places: %s returned %s: %s", e.Endpoint, e.Status, e.Message)
}

type textSearchResponse struct {
	Status       string             `json:"status"`
	ErrorMessage string             `json:"error_message"`
	Results      []textSearchResult `json:"results"`
}

type textSearchResult struct {
	PlaceID          string  `json:"place_id"`
	Name             string  `json:"name"`
	Rating           float64 `json:"rating"`
	FormattedAddress string  `json:"formatted_address"`
}

type detailsResponse struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message"`
	Result       detailsResult `json:"result"`
}

type detailsResult struct {
	Name                 string  `json:"name"`
	Rating               float64 `json:"rating"`
	FormattedAddress     string  `json:"formatted_address"`
	FormattedPhoneNumber string  `json:"formatted_phone_number"`
	Website              string  `json:"website"`
}

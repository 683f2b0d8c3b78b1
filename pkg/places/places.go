package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type placesImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newPlacesImpl(cfg Config) *placesImpl {
	return &placesImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// TextSearch runs a text search, then fetches details for the first limit results.
// A result whose details lookup fails keeps the fields the search already returned.
func (p *placesImpl) TextSearch(ctx context.Context, query string, limit int) ([]Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("places: empty query")
	}

	var search textSearchResponse
	if err := p.get(ctx, "/textsearch/json", url.Values{"query": {query}}, &search); err != nil {
		return nil, err
	}
	switch search.Status {
	case statusOK:
	case statusZeroResults:
		return []Place{}, nil
	default:
		return nil, &StatusError{Endpoint: "textsearch", Status: search.Status, Message: search.ErrorMessage}
	}

	results := search.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	out := make([]Place, 0, len(results))
	for _, r := range results {
		place := Place{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Rating:  r.Rating,
			Address: r.FormattedAddress,
		}
		if r.PlaceID != "" {
			if d, err := p.details(ctx, r.PlaceID); err == nil {
				mergeDetails(&place, d)
			} else if ctx.Err() != nil {
				return nil, ctx.Err()
			}
		}
		out = append(out, place)
	}
	return out, nil
}

func (p *placesImpl) details(ctx context.Context, placeID string) (detailsResult, error) {
	var resp detailsResponse
	params := url.Values{"place_id": {placeID}, "fields": {detailFields}}
	if err := p.get(ctx, "/details/json", params, &resp); err != nil {
		return detailsResult{}, err
	}
	if resp.Status != statusOK {
		return detailsResult{}, &StatusError{Endpoint: "details", Status: resp.Status, Message: resp.ErrorMessage}
	}
	return resp.Result, nil
}

func (p *placesImpl) get(ctx context.Context, path string, params url.Values, dst any) error {
	params.Set("key", p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("places: failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("places: API error %d: %s", resp.StatusCode, string(raw))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("places: failed to decode response: %w", err)
	}
	return nil
}

func mergeDetails(p *Place, d detailsResult) {
	if d.Name != "" {
		p.Name = d.Name
	}
	if d.Rating != 0 {
		p.Rating = d.Rating
	}
	if d.FormattedAddress != "" {
		p.Address = d.FormattedAddress
	}
	p.Phone = d.FormattedPhoneNumber
	p.Website = d.Website
}

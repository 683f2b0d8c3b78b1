package places

import "context"

// IPlaces searches businesses by free-text query.
// Implementations are safe for concurrent use.
type IPlaces interface {
	// TextSearch returns up to limit places matching query, enriched with contact details.
	// No matches is an empty slice, not an error.
	TextSearch(ctx context.Context, query string, limit int) ([]Place, error)
}

// New creates a Places client
func New(cfg Config) (IPlaces, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newPlacesImpl(cfg), nil
}

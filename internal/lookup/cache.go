package lookup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"event-planner/internal/model"
)

// CacheConfig sizes the lookup memo.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

func (c CacheConfig) withDefaults() CacheConfig {
	if c.Size <= 0 {
		c.Size = 512
	}
	if c.TTL <= 0 {
		c.TTL = 30 * time.Minute
	}
	return c
}

type cachedSearcher struct {
	next    Searcher
	entries *expirable.LRU[string, []model.Place]
}

// NewCachedSearcher memoizes successful searches. Failures are never cached.
func NewCachedSearcher(next Searcher, cfg CacheConfig) Searcher {
	cfg = cfg.withDefaults()
	return &cachedSearcher{
		next:    next,
		entries: expirable.NewLRU[string, []model.Place](cfg.Size, nil, cfg.TTL),
	}
}

func (c *cachedSearcher) Search(ctx context.Context, query, location string, limit int) ([]model.Place, error) {
	key := fmt.Sprintf("%s|%s|%d", normalizeKey(query), normalizeKey(location), limit)
	if hit, ok := c.entries.Get(key); ok {
		return clonePlaces(hit), nil
	}

	found, err := c.next.Search(ctx, query, location, limit)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, clonePlaces(found))
	return found, nil
}

type coordinates struct {
	lat, lng float64
}

type cachedGeocoder struct {
	next    Geocoder
	entries *expirable.LRU[string, coordinates]
}

// NewCachedGeocoder memoizes successful geocodes. Failures are never cached.
func NewCachedGeocoder(next Geocoder, cfg CacheConfig) Geocoder {
	cfg = cfg.withDefaults()
	return &cachedGeocoder{
		next:    next,
		entries: expirable.NewLRU[string, coordinates](cfg.Size, nil, cfg.TTL),
	}
}

func (c *cachedGeocoder) Geocode(ctx context.Context, location string) (float64, float64, error) {
	key := normalizeKey(location)
	if hit, ok := c.entries.Get(key); ok {
		return hit.lat, hit.lng, nil
	}

	lat, lng, err := c.next.Geocode(ctx, location)
	if err != nil {
		return 0, 0, err
	}
	c.entries.Add(key, coordinates{lat: lat, lng: lng})
	return lat, lng, nil
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func clonePlaces(in []model.Place) []model.Place {
	out := make([]model.Place, len(in))
	copy(out, in)
	return out
}

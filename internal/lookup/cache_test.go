package lookup

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planner/internal/model"
)

type countingSearcher struct {
	calls atomic.Int32
	fail  bool
}

func (s *countingSearcher) Search(ctx context.Context, query, location string, limit int) ([]model.Place, error) {
	s.calls.Add(1)
	if s.fail {
		return nil, errors.New("quota")
	}
	return []model.Place{{Name: query + " @ " + location}}, nil
}

type countingGeocoder struct {
	calls atomic.Int32
}

func (g *countingGeocoder) Geocode(ctx context.Context, location string) (float64, float64, error) {
	g.calls.Add(1)
	return 31.52, 74.35, nil
}

func TestCachedSearcher_HitsIgnoreCaseAndSpacing(t *testing.T) {
	next := &countingSearcher{}
	s := NewCachedSearcher(next, CacheConfig{Size: 8, TTL: time.Minute})

	first, err := s.Search(context.Background(), "Banquet Hall", "Lahore", 3)
	require.NoError(t, err)
	second, err := s.Search(context.Background(), "banquet   hall", " lahore ", 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, next.calls.Load())

	_, err = s.Search(context.Background(), "banquet hall", "Lahore", 5)
	require.NoError(t, err)
	assert.EqualValues(t, 2, next.calls.Load(), "limit is part of the key")
}

func TestCachedSearcher_CallerCannotMutateEntry(t *testing.T) {
	s := NewCachedSearcher(&countingSearcher{}, CacheConfig{})

	got, _ := s.Search(context.Background(), "florist", "Lahore", 3)
	got[0].Name = "changed"

	again, _ := s.Search(context.Background(), "florist", "Lahore", 3)
	assert.Equal(t, "florist @ Lahore", again[0].Name)
}

func TestCachedSearcher_DoesNotCacheFailures(t *testing.T) {
	next := &countingSearcher{fail: true}
	s := NewCachedSearcher(next, CacheConfig{})

	_, err := s.Search(context.Background(), "dj", "Lahore", 3)
	require.Error(t, err)
	_, err = s.Search(context.Background(), "dj", "Lahore", 3)
	require.Error(t, err)
	assert.EqualValues(t, 2, next.calls.Load())
}

func TestCachedGeocoder(t *testing.T) {
	next := &countingGeocoder{}
	g := NewCachedGeocoder(next, CacheConfig{Size: 2, TTL: time.Minute})

	lat, lng, err := g.Geocode(context.Background(), "Lahore")
	require.NoError(t, err)
	_, _, err = g.Geocode(context.Background(), "LAHORE")
	require.NoError(t, err)

	assert.Equal(t, 31.52, lat)
	assert.Equal(t, 74.35, lng)
	assert.EqualValues(t, 1, next.calls.Load())
}

func TestSearchQuery(t *testing.T) {
	assert.Equal(t, "caterer near Lahore", searchQuery(" caterer ", "Lahore"))
	assert.Equal(t, "caterer", searchQuery("caterer", ""))
}

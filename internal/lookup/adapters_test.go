package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-planner/pkg/openmeteo"
	"event-planner/pkg/places"
)

type fakePlaces struct {
	query string
	limit int
}

func (f *fakePlaces) TextSearch(ctx context.Context, query string, limit int) ([]places.Place, error) {
	f.query, f.limit = query, limit
	return []places.Place{{PlaceID: "p1", Name: "Royal Palm", Rating: 4.4, Phone: "042"}}, nil
}

func TestPlaceSearcher(t *testing.T) {
	fp := &fakePlaces{}
	got, err := NewPlaceSearcher(fp).Search(context.Background(), "golf club venue", "Lahore", 3)
	require.NoError(t, err)

	assert.Equal(t, "golf club venue near Lahore", fp.query)
	assert.Equal(t, 3, fp.limit)
	require.Len(t, got, 1)
	assert.Equal(t, "Royal Palm", got[0].Name)
	assert.Equal(t, 4.4, got[0].Rating)
	assert.Equal(t, "042", got[0].Phone)
}

func TestForecaster_DescribesCodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily":{"time":["2025-06-13"],"temperature_2m_min":[29],"temperature_2m_max":[41],"weathercode":[2]}}`))
	}))
	defer ts.Close()

	f := NewForecaster(openmeteo.New(openmeteo.Config{URL: ts.URL}), 0, nil)
	day := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	got, err := f.Forecast(context.Background(), 31.5, 74.3, DateRange{Start: day, End: day})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Partly cloudy", got[0].Condition)
	assert.Equal(t, 41.0, got[0].MaxTemp)
}

func TestForecaster_Horizon(t *testing.T) {
	var gotEnd string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEnd = r.URL.Query().Get("end_date")
		w.Write([]byte(`{"daily":{"time":[],"temperature_2m_min":[],"temperature_2m_max":[],"weathercode":[]}}`))
	}))
	defer ts.Close()

	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	f := openMeteoForecaster{
		client:  openmeteo.New(openmeteo.Config{URL: ts.URL}),
		horizon: 16,
		loc:     time.UTC,
		now:     func() time.Time { return today },
	}

	_, err := f.Forecast(context.Background(), 1, 1, DateRange{Start: today.AddDate(0, 0, 14), End: today.AddDate(0, 0, 18)})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-16", gotEnd)

	gotEnd = ""
	got, err := f.Forecast(context.Background(), 1, 1, DateRange{Start: today.AddDate(0, 0, 30), End: today.AddDate(0, 0, 32)})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, gotEnd, "out-of-horizon ranges make no request")
}

func TestForecaster_HorizonUsesLocalCalendarDate(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"daily":{"time":["2025-06-17"],"temperature_2m_min":[28],"temperature_2m_max":[40],"weathercode":[0]}}`))
	}))
	defer ts.Close()

	karachi := time.FixedZone("PKT", 5*60*60)
	lastDay := DateRange{
		Start: time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
	}

	// 20:30 UTC is already the next day in Karachi, 18:59 UTC is not.
	tests := []struct {
		name      string
		now       time.Time
		wantCalls int
	}{
		{name: "after local midnight", now: time.Date(2025, 6, 1, 20, 30, 0, 0, time.UTC), wantCalls: 1},
		{name: "before local midnight", now: time.Date(2025, 6, 1, 18, 59, 0, 0, time.UTC), wantCalls: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			calls = 0
			f := openMeteoForecaster{
				client:  openmeteo.New(openmeteo.Config{URL: ts.URL}),
				horizon: 16,
				loc:     karachi,
				now:     func() time.Time { return tc.now },
			}

			_, err := f.Forecast(context.Background(), 31.5, 74.3, lastDay)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCalls, calls)
		})
	}
}

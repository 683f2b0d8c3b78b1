package openmeteo_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-planner/pkg/openmeteo"
)

func TestDaily(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("start_date") != "2025-06-13" || q.Get("end_date") != "2025-06-15" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":true,"reason":"bad range"}`))
			return
		}
		if q.Get("daily") != "temperature_2m_min,temperature_2m_max,weathercode" || q.Get("latitude") != "31.5204" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":true,"reason":"bad params"}`))
			return
		}
		w.Write([]byte(`{"daily":{"time":["2025-06-13","2025-06-14","2025-06-15"],"temperature_2m_min":[29.1,30,28.4],"temperature_2m_max":[41.2,42,39.9],"weathercode":[0,2,95]}}`))
	}))
	defer ts.Close()

	client := openmeteo.New(openmeteo.Config{URL: ts.URL})
	start := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	days, err := client.Daily(context.Background(), 31.5204, 74.3587, start, start.AddDate(0, 0, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 3 || days[2].Date != "2025-06-15" || days[2].WeatherCode != 95 || days[0].MaxTemp != 41.2 {
		t.Errorf("unexpected days %+v", days)
	}

	_, err = client.Daily(context.Background(), 31.5204, 74.3587, start, start)
	if err == nil {
		t.Fatal("expected API error")
	}
}

func TestDaily_MismatchedSeries(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"daily":{"time":["2025-06-13","2025-06-14"],"temperature_2m_min":[1],"temperature_2m_max":[2,3],"weathercode":[0,0]}}`))
	}))
	defer ts.Close()

	_, err := openmeteo.New(openmeteo.Config{URL: ts.URL}).Daily(context.Background(), 0, 0, time.Now(), time.Now())
	if !errors.Is(err, openmeteo.ErrMismatchedSeries) {
		t.Fatalf("expected ErrMismatchedSeries, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	if openmeteo.Describe(95) != "Thunderstorm" || openmeteo.Describe(3) != "Overcast" {
		t.Error("unexpected descriptions")
	}
	if openmeteo.Describe(12345) != "Unknown" {
		t.Error("unknown code should describe as Unknown")
	}
}

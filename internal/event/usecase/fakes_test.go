package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"event-planner/internal/lookup"
	"event-planner/internal/model"
	"event-planner/internal/planner"
	"event-planner/pkg/datemath"
	"event-planner/pkg/gcalendar"
	"event-planner/pkg/llmprovider"
	"event-planner/pkg/log"
)

type route struct {
	marker string
	reply  string
	err    error
}

// scriptedLLM answers by the first route whose marker appears in the prompt.
type scriptedLLM struct {
	mu     sync.Mutex
	routes []route
	calls  map[string]int
	total  int
}

func newScriptedLLM(routes ...route) *scriptedLLM {
	return &scriptedLLM{routes: routes, calls: map[string]int{}}
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string, opts llmprovider.Options) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	for _, r := range s.routes {
		if strings.Contains(prompt, r.marker) {
			s.calls[r.marker]++
			return r.reply, r.err
		}
	}
	return "", errors.New("unexpected prompt")
}

func (s *scriptedLLM) count(marker string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[marker]
}

func (s *scriptedLLM) totalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

type fakeSearch struct {
	mu      sync.Mutex
	results map[string][]model.Place
	fail    map[string]bool
	queries []string
}

func (f *fakeSearch) Search(ctx context.Context, query, location string, limit int) ([]model.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query+" @ "+location)
	if f.fail[query] {
		return nil, errors.New("places: OVER_QUERY_LIMIT")
	}
	return f.results[query], nil
}

type fakeGeocoder struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, location string) (float64, float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return 31.5204, 74.3587, nil
}

type fakeForecaster struct {
	mu     sync.Mutex
	series []model.ForecastDay
	got    []lookup.DateRange
}

func (f *fakeForecaster) Forecast(ctx context.Context, lat, lng float64, days lookup.DateRange) ([]model.ForecastDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, days)
	return f.series, nil
}

type fakeCalendar struct {
	mu   sync.Mutex
	reqs []gcalendar.CreateEventRequest
	fail bool
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("calendar: 403")
	}
	f.reqs = append(f.reqs, req)
	return &gcalendar.Event{ID: "ev" + req.StartTime.Format("0102"), HtmlLink: "https://calendar/ev"}, nil
}

type harness struct {
	uc       *implUseCase
	llm      *scriptedLLM
	search   *fakeSearch
	geocoder *fakeGeocoder
	weather  *fakeForecaster
}

func newHarness(t *testing.T, llm *scriptedLLM, calendar Calendar) *harness {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	h := &harness{
		llm:      llm,
		search:   &fakeSearch{results: map[string][]model.Place{}, fail: map[string]bool{}},
		geocoder: &fakeGeocoder{},
		weather:  &fakeForecaster{},
	}
	uc := New(log.NewNop(), llm, h.search, h.geocoder, h.weather, calendar,
		planner.New(log.NewNop(), planner.Config{MaxConcurrency: 4}), dm,
		Config{TaskTimeout: time.Second, Timezone: "UTC"})
	h.uc = uc.(*implUseCase)
	h.uc.now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }
	return h
}

const (
	markIntent      = "Extract structured event information"
	markVenues      = "kinds of venue"
	markVendors     = "vendors are typically needed"
	markSchedule    = "multi-day schedule"
	markTransport   = "logistics planner"
	markSightseeing = "local guide"
	markMealPlan    = "catering planner"
	markTheme       = "event designer"
	markSummary     = "Condense the "
)

const threeDaySchedule = `[
 {"day": "Day 1 - Arrival", "activities": ["Airport pickup", "Mehndi night"]},
 {"day": "Day 2 - Baraat", "activities": ["Baraat", "Dinner"]},
 {"day": "Day 3 - Walima", "activities": ["Walima lunch", "Checkout"]}
]`

// happyRoutes answers every section prompt with a usable reply.
func happyRoutes() []route {
	return []route{
		{marker: markSummary, reply: `{"top": ["first pick", "second pick"]}`},
		{marker: markVenues, reply: `["banquet hall", "marquee"]`},
		{marker: markVendors, reply: "Final Answer: ```json\n[\"catering\", \"lighting\"]\n```"},
		{marker: markSchedule, reply: threeDaySchedule},
		{marker: markTransport, reply: `{"airport_transfers": "coaches", "parking": "valet"}`},
		{marker: markSightseeing, reply: `["historic fort"]`},
		{marker: markMealPlan, reply: `{"Day 1 - Arrival": {"dinner": "BBQ"}}`},
		{marker: markTheme, reply: `{"theme": "Mughal garden"}`},
	}
}

func wedding() model.Intent {
	return model.Intent{EventType: "wedding", Location: "Lahore", EventDate: "2025-06-13", GuestCount: 300}
}

func scheduleUpstream() planner.Upstream {
	return planner.Upstream{model.SectionSchedule: planner.Succeeded(model.Schedule{
		{DayLabel: "Day 1", Activities: []string{"Arrival"}},
		{DayLabel: "Day 2", Activities: []string{"Ceremony"}},
		{DayLabel: "Day 3", Activities: []string{"Departure"}},
	})}
}

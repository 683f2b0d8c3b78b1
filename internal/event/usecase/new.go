package usecase

import (
	"context"
	"time"

	"event-planner/internal/event"
	"event-planner/internal/lookup"
	"event-planner/internal/planner"
	"event-planner/pkg/datemath"
	"event-planner/pkg/gcalendar"
	"event-planner/pkg/llmprovider"
	pkgLog "event-planner/pkg/log"
)

// Calendar publishes schedule days. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the section tasks.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	// TaskTimeout bounds every outbound call a task makes.
	TaskTimeout time.Duration
	// SearchLimit is the number of places kept per sub-query.
	SearchLimit int
	Timezone    string
	CalendarID  string
}

type implUseCase struct {
	l            pkgLog.Logger
	llm          llmprovider.Completer
	search       lookup.Searcher
	geocoder     lookup.Geocoder
	weather      lookup.Forecaster
	calendar     Calendar
	orchestrator *planner.Orchestrator
	dateMath     *datemath.Parser
	cfg          Config
	now          func() time.Time
}

// New creates a new event UseCase instance. calendar may be nil, which leaves the calendar section out of the graph.
func New(
	l pkgLog.Logger,
	llm llmprovider.Completer,
	search lookup.Searcher,
	geocoder lookup.Geocoder,
	weather lookup.Forecaster,
	calendar Calendar,
	orchestrator *planner.Orchestrator,
	dateMath *datemath.Parser,
	cfg Config,
) event.UseCase {
	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:            l,
		llm:          llm,
		search:       search,
		geocoder:     geocoder,
		weather:      weather,
		calendar:     calendar,
		orchestrator: orchestrator,
		dateMath:     dateMath,
		cfg:          cfg,
		now:          time.Now,
	}
}

// options are the completion options shared by every task.
func (uc *implUseCase) options(temperature float64) llmprovider.Options {
	return llmprovider.Options{
		Model:       uc.cfg.Model,
		Temperature: temperature,
		MaxTokens:   uc.cfg.MaxTokens,
		Timeout:     uc.cfg.TaskTimeout,
	}
}

// callCtx bounds one lookup call by the task timeout.
func (uc *implUseCase) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if uc.cfg.TaskTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, uc.cfg.TaskTimeout)
}

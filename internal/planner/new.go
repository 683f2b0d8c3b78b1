package planner

import (
	"time"

	"event-planner/pkg/log"
)

// Config bounds a run.
type Config struct {
	// MaxConcurrency caps tasks producing at once; zero means unbounded.
	MaxConcurrency int
	// RunTimeout cancels the whole run; zero means only the caller's context applies.
	RunTimeout time.Duration
}

// Orchestrator executes task graphs.
type Orchestrator struct {
	l   log.Logger
	cfg Config
}

// New creates an orchestrator.
func New(l log.Logger, cfg Config) *Orchestrator {
	if cfg.MaxConcurrency < 0 {
		cfg.MaxConcurrency = 0
	}
	return &Orchestrator{l: l, cfg: cfg}
}

package middleware

import (
	"event-planner/pkg/log"
)

// Config configures the HTTP middlewares.
type Config struct {
	RateLimitEnabled bool
	RequestsPerMin   int
}

// Middleware holds the shared state of the gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. The rate limiter is nil when disabled.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitEnabled && cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}

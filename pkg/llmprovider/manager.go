package llmprovider

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"event-planner/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	limiter   *rate.Limiter
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
	// RequestsPerMinute throttles outbound calls across all providers; zero disables it.
	RequestsPerMinute int
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = 1
	}

	m := &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
	if config.RequestsPerMinute > 0 {
		burst := config.RequestsPerMinute / 10
		if burst < 1 {
			burst = 1
		}
		m.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(config.RequestsPerMinute)), burst)
	}
	return m
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return m.generate(ctx, m.providers, req)
}

func (m *Manager) generate(ctx context.Context, providers []Provider, req *Request) (*Response, error) {
	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	// Create context with global timeout for entire fallback chain
	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, provider := range providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("timeout exceeded after trying %d provider(s): %w", len(providers), err)
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = err

		// If fallback is disabled, stop after first provider
		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with a linearly growing delay
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if m.limiter != nil {
			if err := m.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed LLM generation attempts
func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warn(ctx, "LLM generation failed",
		"provider", provider.Name(),
		"model", provider.Model(),
		"error", err.Error(),
	)
}

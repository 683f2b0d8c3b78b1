package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"event-planner/config"
	"event-planner/pkg/deepseek"
	"event-planner/pkg/gemini"
	"event-planner/pkg/log"
	"event-planner/pkg/qwen"
)

// InitializeProviders builds the enabled providers in ascending priority order.
// A provider that fails to initialize is logged and skipped; only an empty
// result is an error.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, ErrNoProvidersConfigured
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrs []error
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			err = fmt.Errorf("%s (priority %d): %w", p.Name, p.Priority, err)
			l.Warnf(ctx, "llmprovider: skipping provider: %v", err)
			initErrs = append(initErrs, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoProvidersConfigured, errors.Join(initErrs...))
	}
	return providers, nil
}

// createProvider builds one provider; an unset timeout keeps the client default.
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("model is required")
	}

	var httpClient *http.Client
	if cfg.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.Timeout)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("invalid timeout %q", cfg.Timeout)
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	switch strings.ToLower(cfg.Name) {
	case ProviderDeepSeek:
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	case ProviderQwen, "alibaba":
		client, err := qwen.New(qwen.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewQwenAdapter(client), nil

	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Name)
	}
}

package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// wrapError tags a client error with the provider name and the matching sentinel.
func wrapError(provider string, status int, err error) error {
	switch {
	case status == http.StatusTooManyRequests:
		err = fmt.Errorf("%w: %w", ErrProviderRateLimited, err)
	case status == http.StatusGatewayTimeout, status == http.StatusRequestTimeout:
		err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	case errors.Is(err, context.DeadlineExceeded):
		err = fmt.Errorf("%w: %w", ErrProviderTimeout, err)
	}
	return &ProviderError{Provider: provider, Err: err}
}

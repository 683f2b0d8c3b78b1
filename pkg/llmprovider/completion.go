package llmprovider

import (
	"context"
	"strings"
	"time"
)

// Completer turns a single prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}

// Options tune one completion call.
type Options struct {
	// Model moves providers serving this model to the front of the fallback chain.
	Model       string
	Temperature float64
	MaxTokens   int
	// Timeout bounds this call only, on top of any deadline already on ctx.
	Timeout time.Duration
	System  string
}

// Complete implements Completer on top of the fallback chain.
func (m *Manager) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrInvalidRequest
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	resp, err := m.generate(ctx, m.preferModel(opts.Model), &Request{
		SystemInstruction: opts.System,
		Messages:          []Message{{Role: RoleUser, Text: prompt}},
		Temperature:       opts.Temperature,
		MaxTokens:         opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// preferModel returns the providers with those serving model first, priority kept otherwise.
func (m *Manager) preferModel(model string) []Provider {
	if model == "" {
		return m.providers
	}
	out := make([]Provider, 0, len(m.providers))
	for _, p := range m.providers {
		if p.Model() == model {
			out = append(out, p)
		}
	}
	for _, p := range m.providers {
		if p.Model() != model {
			out = append(out, p)
		}
	}
	return out
}

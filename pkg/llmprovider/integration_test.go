package llmprovider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-planner/config"
	"event-planner/pkg/llmprovider"
	"event-planner/pkg/log"
)

// TestIntegration_ConfigToManagerFlow wires config, factory and manager against a fake
// OpenAI-compatible endpoint.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"Final Answer: [\"catering\", \"lighting\"]"},"finish_reason":"stop"}],"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`))
	}))
	defer ts.Close()

	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "test-deepseek-key", Model: "deepseek-chat", BaseURL: ts.URL},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-qwen-key", Model: "qwen-plus", BaseURL: ts.URL},
		},
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      "1s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 || providers[0].Name() != "qwen" || providers[1].Name() != "deepseek" {
		t.Fatalf("unexpected provider order")
	}

	retryDelay, err := cfg.RetryDelayDuration()
	if err != nil {
		t.Fatal(err)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
	}, log.NewNop())

	var completer llmprovider.Completer = manager
	text, err := completer.Complete(context.Background(), "vendor types for a wedding", llmprovider.Options{})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if text != `Final Answer: ["catering", "lighting"]` {
		t.Errorf("unexpected text %q", text)
	}
}

// TestIntegration_ConfigValidation verifies that invalid configurations
// are caught during initialization
func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-key", Model: "qwen-plus"},
			}},
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: false, Priority: 1, APIKey: "test-key", Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k", Model: "qwen-plus", Timeout: "soon"},
			}},
			wantErr: true,
		},
		{
			name: "one broken provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
				{Name: "qwen", Enabled: true, Priority: 2, APIKey: "k", Model: "qwen-plus", Timeout: "90s"},
			}},
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

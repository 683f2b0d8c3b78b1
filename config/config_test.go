package config

import (
	"errors"
	"testing"
)

func validConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g-key", Model: "gemini-2.5-flash"},
				{Name: "qwen", Enabled: false, Priority: 2, Model: "qwen-plus"},
			},
			RetryDelay:      "1s",
			MaxTotalTimeout: "60s",
		},
		Google:  GoogleConfig{APIKey: "maps-key"},
		Lookup:  LookupConfig{SearchLimit: 3},
		Planner: PlannerConfig{Timezone: "UTC", MaxConcurrency: 4},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "no providers",
			mutate:  func(c *Config) { c.LLM.Providers = nil },
			wantErr: ErrNoLLMProviders,
		},
		{
			name:    "enabled provider without key",
			mutate:  func(c *Config) { c.LLM.Providers[0].APIKey = "" },
			wantErr: ErrMissingLLMKey,
		},
		{
			name:    "disabled provider without key is fine",
			mutate:  func(c *Config) { c.LLM.Providers[1].APIKey = "" },
			wantErr: nil,
		},
		{
			name:    "missing google key",
			mutate:  func(c *Config) { c.Google.APIKey = " " },
			wantErr: ErrMissingGoogleKey,
		},
		{
			name:    "calendar enabled without credentials",
			mutate:  func(c *Config) { c.GoogleCalendar = GoogleCalendarConfig{Enabled: true, CalendarID: "primary"} },
			wantErr: ErrMissingCalendarCfg,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	tests := map[string]func(c *Config){
		"bad timezone": func(c *Config) {
			c.Planner.Timezone = "Mars/Olympus"
		},
		"bad retry delay": func(c *Config) {
			c.LLM.RetryDelay = "soon"
		},
		"zero search limit": func(c *Config) {
			c.Lookup.SearchLimit = 0
		},
		"duplicate priority": func(c *Config) {
			c.LLM.Providers[1].Enabled = true
			c.LLM.Providers[1].Priority = 1
			c.LLM.Providers[1].APIKey = "k"
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("EVENT_PLANNER_TEST_KEY", "secret")

	if got := expandEnvVar("${EVENT_PLANNER_TEST_KEY}"); got != "secret" {
		t.Errorf("expected secret, got %q", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("expected plain, got %q", got)
	}
	if got := expandEnvVar("${EVENT_PLANNER_UNSET_KEY}"); got != "" {
		t.Errorf("unset variable should expand to empty, got %q", got)
	}
}

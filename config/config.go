package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Lookup services
	Google  GoogleConfig
	Weather WeatherConfig
	Lookup  LookupConfig

	// Pipeline
	Planner        PlannerConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig throttles API callers per client IP.
type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
}

// GoogleConfig holds the Maps Platform credentials used for place search and geocoding.
type GoogleConfig struct {
	APIKey     string
	PlacesURL  string
	GeocodeURL string
}

type WeatherConfig struct {
	OpenMeteoURL string
	ForecastDays int
}

// LookupConfig bounds place searches and memoizes lookup results.
type LookupConfig struct {
	SearchLimit int
	CacheSize   int
	CacheTTL    time.Duration
}

// PlannerConfig tunes one planning run.
type PlannerConfig struct {
	TaskTimeout    time.Duration
	RunTimeout     time.Duration
	MaxConcurrency int
	Model          string
	Temperature    float64
	MaxTokens      int
	Timezone       string
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers         []ProviderConfig `yaml:"providers"`
	FallbackEnabled   bool             `yaml:"fallback_enabled"`
	RetryAttempts     int              `yaml:"retry_attempts"`
	RetryDelay        string           `yaml:"retry_delay"`
	MaxTotalTimeout   string           `yaml:"max_total_timeout"`
	RequestsPerMinute int              `yaml:"requests_per_minute"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

var (
	ErrNoLLMProviders     = errors.New("no LLM providers configured - please add llm.providers section to config.yaml")
	ErrMissingLLMKey      = errors.New("LLM provider API key is required")
	ErrMissingGoogleKey   = errors.New("google.api_key is required for place search and geocoding")
	ErrMissingCalendarCfg = errors.New("google_calendar.credentials_path and calendar_id are required when the calendar export is enabled")
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := fromViper()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper() *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Lookup services
	cfg.Google.APIKey = expandEnvVar(viper.GetString("google.api_key"))
	if key := viper.GetString("google_api_key"); key != "" {
		cfg.Google.APIKey = key
	}
	cfg.Google.PlacesURL = viper.GetString("google.places_url")
	cfg.Google.GeocodeURL = viper.GetString("google.geocode_url")
	cfg.Weather.OpenMeteoURL = viper.GetString("weather.open_meteo_url")
	cfg.Weather.ForecastDays = viper.GetInt("weather.forecast_days")
	cfg.Lookup.SearchLimit = viper.GetInt("lookup.search_limit")
	cfg.Lookup.CacheSize = viper.GetInt("lookup.cache_size")
	cfg.Lookup.CacheTTL = viper.GetDuration("lookup.cache_ttl")

	// Pipeline
	cfg.Planner.TaskTimeout = viper.GetDuration("planner.task_timeout")
	cfg.Planner.RunTimeout = viper.GetDuration("planner.run_timeout")
	cfg.Planner.MaxConcurrency = viper.GetInt("planner.max_concurrency")
	cfg.Planner.Model = viper.GetString("planner.model")
	cfg.Planner.Temperature = viper.GetFloat64("planner.temperature")
	cfg.Planner.MaxTokens = viper.GetInt("planner.max_tokens")
	cfg.Planner.Timezone = viper.GetString("planner.timezone")

	cfg.GoogleCalendar.Enabled = viper.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.RequestsPerMinute = viper.GetInt("llm.requests_per_minute")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 30)

	viper.SetDefault("google.places_url", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("google.geocode_url", "https://maps.googleapis.com/maps/api/geocode/json")
	viper.SetDefault("weather.open_meteo_url", "https://api.open-meteo.com/v1/forecast")
	viper.SetDefault("weather.forecast_days", 16)
	viper.SetDefault("lookup.search_limit", 3)
	viper.SetDefault("lookup.cache_size", 512)
	viper.SetDefault("lookup.cache_ttl", "30m")

	viper.SetDefault("planner.task_timeout", "45s")
	viper.SetDefault("planner.run_timeout", "5m")
	viper.SetDefault("planner.max_concurrency", 4)
	viper.SetDefault("planner.temperature", 0.4)
	viper.SetDefault("planner.max_tokens", 2048)
	viper.SetDefault("planner.timezone", "UTC")

	viper.SetDefault("google_calendar.enabled", false)
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
	viper.SetDefault("llm.requests_per_minute", 60)
}

// Validate reports the first configuration problem that must stop startup.
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	if strings.TrimSpace(c.Google.APIKey) == "" {
		return ErrMissingGoogleKey
	}
	if c.GoogleCalendar.Enabled && (c.GoogleCalendar.CredentialsPath == "" || c.GoogleCalendar.CalendarID == "") {
		return ErrMissingCalendarCfg
	}
	if c.Planner.MaxConcurrency < 0 {
		return fmt.Errorf("planner.max_concurrency must not be negative")
	}
	if c.Lookup.SearchLimit <= 0 {
		return fmt.Errorf("lookup.search_limit must be positive")
	}
	if _, err := time.LoadLocation(c.Planner.Timezone); err != nil {
		return fmt.Errorf("planner.timezone: %w", err)
	}
	return nil
}

// RetryDelayDuration parses llm.retry_delay.
func (c LLMConfig) RetryDelayDuration() (time.Duration, error) {
	return parseDuration("llm.retry_delay", c.RetryDelay)
}

// MaxTotalTimeoutDuration parses llm.max_total_timeout.
func (c LLMConfig) MaxTotalTimeoutDuration() (time.Duration, error) {
	return parseDuration("llm.max_total_timeout", c.MaxTotalTimeout)
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return ErrNoLLMProviders
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if strings.TrimSpace(provider.APIKey) == "" {
			return fmt.Errorf("provider %s: %w", provider.Name, ErrMissingLLMKey)
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	if _, err := cfg.RetryDelayDuration(); err != nil {
		return err
	}
	if _, err := cfg.MaxTotalTimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

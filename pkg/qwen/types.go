package qwen

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrMissingAPIKey is returned by New when no API key is configured.
var ErrMissingAPIKey = errors.New("qwen: APIKey is required")

// Config holds Qwen client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// qwenImpl is the internal implementation of IQwen
type qwenImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request represents a Qwen generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message is one chat turn. Role is "user" or "assistant".
type Message struct {
	Role    string
	Content string
}

// Response represents a Qwen generation response
type Response struct {
	Text         string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is a non-200 answer from the compatible-mode endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("qwen: API error %d: %s", e.StatusCode, e.Body)
}

// OpenAI-compatible types for Qwen API
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	ID      string         `json:"id"`
	Model   string         `json:"model"`
	Choices []openAIChoice `json:"choices"`
	Usage   openAIUsage    `json:"usage"`
}

type openAIChoice struct {
	Index        int           `json:"index"`
	Message      openAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

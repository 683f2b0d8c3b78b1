package gemini

import "net/http"

// Config holds Gemini client configuration
type Config struct {
	APIKey     string
	Model      string
	APIURL     string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// geminiImpl is the internal implementation of IGemini
type geminiImpl struct {
	apiKey     string
	model      string
	apiURL     string
	httpClient *http.Client
}

// Request represents a Gemini generation request
type Request struct {
	SystemInstruction string
	Messages          []Content
	Temperature       float64
	MaxTokens         int
}

// Content is one conversation turn. Role is "user" or "model".
type Content struct {
	Role string
	Text string
}

// Response represents a Gemini generation response
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

// Wire types for the generateContent endpoint.
type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates    []geminiCandidate `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

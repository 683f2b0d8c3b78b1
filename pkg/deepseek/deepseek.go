package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// IDeepSeek generates chat completions through the DeepSeek API.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IDeepSeek = (*Client)(nil)

// Client talks to the OpenAI-compatible DeepSeek endpoint.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// New creates a new DeepSeek client
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
	}, nil
}

// Model returns the model being used
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends a request to DeepSeek API
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	payload := *req
	if payload.Model == "" {
		payload.Model = c.model
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("deepseek: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errResp.Error.Message}
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("deepseek: failed to parse response: %w", err)
	}

	return &result, nil
}

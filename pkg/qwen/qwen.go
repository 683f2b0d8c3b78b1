package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// IQwen generates text completions. Implementations are safe for concurrent use.
type IQwen interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IQwen = (*qwenImpl)(nil)

// New validates cfg and returns a Qwen client.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}

// newQwenImpl creates a new Qwen implementation
func newQwenImpl(cfg Config) *qwenImpl {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(q.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		q.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}

	return transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

// transformRequest converts request to OpenAI-compatible format
func (q *qwenImpl) transformRequest(req *Request) *openAIRequest {
	openAIReq := &openAIRequest{
		Model:       q.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.SystemInstruction != "" {
		openAIReq.Messages = append(openAIReq.Messages, openAIMessage{Role: "system", Content: req.SystemInstruction})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		openAIReq.Messages = append(openAIReq.Messages, openAIMessage{Role: role, Content: msg.Content})
	}

	return openAIReq
}

func transformResponse(resp *openAIResponse) *Response {
	out := &Response{
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return out
	}
	out.Text = resp.Choices[0].Message.Content
	out.FinishReason = resp.Choices[0].FinishReason
	return out
}

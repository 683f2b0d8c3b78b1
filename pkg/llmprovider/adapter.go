package llmprovider

import (
	"context"
	"errors"

	"event-planner/pkg/deepseek"
	"event-planner/pkg/gemini"
	"event-planner/pkg/qwen"
)

const (
	ProviderGemini   = "gemini"
	ProviderQwen     = "qwen"
	ProviderDeepSeek = "deepseek"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]gemini.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for _, m := range req.Messages {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{Role: role, Text: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		var apiErr *gemini.APIError
		status := 0
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, wrapError(ProviderGemini, status, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderGemini,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          make([]qwen.Message, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for _, m := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, qwen.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		var apiErr *qwen.APIError
		status := 0
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, wrapError(ProviderQwen, status, err)
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: ProviderQwen,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return ProviderQwen
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != "" {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" {
			role = RoleUser
		}
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		var apiErr *deepseek.APIError
		status := 0
		if errors.As(err, &apiErr) {
			status = apiErr.StatusCode
		}
		return nil, wrapError(ProviderDeepSeek, status, err)
	}

	return &Response{
		Text:         resp.Text(),
		ProviderName: ProviderDeepSeek,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return ProviderDeepSeek
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

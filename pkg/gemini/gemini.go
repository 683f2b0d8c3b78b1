package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// IGemini generates text completions. Implementations are safe for concurrent use.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IGemini = (*geminiImpl)(nil)

// New validates cfg and returns a Gemini client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}

// newGeminiImpl creates a new Gemini implementation
func newGeminiImpl(cfg Config) *geminiImpl {
	return &geminiImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiURL:     strings.TrimRight(cfg.APIURL, "/"),
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to Gemini API
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiResp, err := g.callAPI(ctx, g.transformRequest(req))
	if err != nil {
		return nil, err
	}
	return transformResponse(geminiResp), nil
}

// Model returns the model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// callAPI sends a request to the Gemini API
func (g *geminiImpl) callAPI(ctx context.Context, req geminiRequest) (*geminiResponse, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.apiURL, g.model, url.QueryEscape(g.apiKey))

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("gemini: failed to decode response: %w", err)
	}

	return &result, nil
}

// transformRequest converts request to Gemini API format
func (g *geminiImpl) transformRequest(req *Request) geminiRequest {
	geminiReq := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Messages)),
	}

	if req.SystemInstruction != "" {
		geminiReq.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}

	for _, msg := range req.Messages {
		role := msg.Role
		if role != roleModel {
			role = roleUser
		}
		geminiReq.Contents = append(geminiReq.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Text}},
		})
	}

	if req.Temperature > 0 || req.MaxTokens > 0 {
		geminiReq.GenerationConfig = &geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}

	return geminiReq
}

// transformResponse joins the text parts of the first candidate
func transformResponse(resp *geminiResponse) *Response {
	out := &Response{
		Usage: Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		},
	}
	if len(resp.Candidates) == 0 {
		return out
	}

	candidate := resp.Candidates[0]
	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}
	out.Text = sb.String()
	out.FinishReason = candidate.FinishReason
	return out
}

package qwen_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-planner/pkg/qwen"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" || r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Messages[1].Content == "fail" {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("overloaded"))
			return
		}

		w.Write([]byte(`{"id":"1","model":"` + req.Model + `","choices":[{"index":0,"message":{"role":"assistant","content":"{\"day\":\"Day 1\"}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":3,"completion_tokens":4,"total_tokens":7}}`))
	}))
	defer ts.Close()

	client, err := qwen.New(qwen.Config{APIKey: "sk-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Model() != qwen.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}

	resp, err := client.GenerateContent(context.Background(), &qwen.Request{
		SystemInstruction: "json only",
		Messages:          []qwen.Message{{Content: "schedule"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"day":"Day 1"}` || resp.Usage.TotalTokens != 7 {
		t.Errorf("unexpected response: %+v", resp)
	}

	_, err = client.GenerateContent(context.Background(), &qwen.Request{
		SystemInstruction: "json only",
		Messages:          []qwen.Message{{Role: "user", Content: "fail"}},
	})
	var apiErr *qwen.APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 APIError, got %v", err)
	}
}

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := qwen.New(qwen.Config{}); !errors.Is(err, qwen.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

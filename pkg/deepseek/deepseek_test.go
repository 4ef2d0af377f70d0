package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apple-orchard-advisor/pkg/deepseek"
)

func TestNew(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Error("expected error for missing API key")
	}

	c, err := deepseek.New(deepseek.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != deepseek.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	var captured deepseek.Request
	var auth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&captured)

		if strings.Contains(captured.Messages[len(captured.Messages)-1].Content, "boom") {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "deepseek-chat",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "irrigation_advisor"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	c, _ := deepseek.New(deepseek.Config{APIKey: "secret", BaseURL: ts.URL + "/"})

	t.Run("Success", func(t *testing.T) {
		resp, err := c.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{
				{Role: deepseek.RoleSystem, Content: "route"},
				{Role: deepseek.RoleUser, Content: "Should I irrigate today?"},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if auth != "Bearer secret" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if captured.Model != deepseek.DefaultModel {
			t.Errorf("expected model to default, got %q", captured.Model)
		}
		if resp.Choices[0].Message.Content != "irrigation_advisor" {
			t.Errorf("unexpected content %q", resp.Choices[0].Message.Content)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage %+v", resp.Usage)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := c.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: deepseek.RoleUser, Content: "boom"}},
		})
		if err == nil || !strings.Contains(err.Error(), "rate limited") {
			t.Errorf("expected rate limited error, got %v", err)
		}
		var apiErr *deepseek.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %T", err)
		}
		if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Type != "rate_limit" || !apiErr.Temporary() {
			t.Errorf("unexpected API error %+v", apiErr)
		}
	})

	t.Run("Request Not Mutated", func(t *testing.T) {
		req := &deepseek.Request{Messages: []deepseek.Message{{Role: deepseek.RoleUser, Content: "hi"}}}
		if _, err := c.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Model != "" {
			t.Errorf("caller request was modified: model=%q", req.Model)
		}
	})
}

func TestAPIError_PlainBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer ts.Close()

	c, _ := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL})
	_, err := c.GenerateContent(context.Background(), &deepseek.Request{})

	var apiErr *deepseek.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "upstream exploded" || !apiErr.Temporary() {
		t.Errorf("unexpected API error %+v", apiErr)
	}
}

package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, apiKey string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.OpenRouterConfig{APIKey: apiKey, Model: "google/gemini-test", BaseURL: srv.URL}, 5*time.Second)
}

func TestGenerateSuccess(t *testing.T) {
	var got Request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer secret" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"id":"x","choices":[{"message":{"role":"assistant","content":"Chào bạn"}}],"usage":{"total_tokens":9}}`))
	}, "secret")

	resp, err := c.Generate(context.Background(), &provider.Request{Prompt: "xin chào", Temperature: 0.7, MaxOutputTokens: 1000})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Content != "Chào bạn" || resp.Usage.TotalTokens != 9 {
		t.Errorf("resp = %+v", resp)
	}
	if got.Model != "google/gemini-test" || len(got.Messages) != 1 || got.Messages[0].Content != "xin chào" {
		t.Errorf("request = %+v", got)
	}
	if got.MaxTokens != 1000 || got.Temperature != 0.7 {
		t.Errorf("generation params = %d/%v", got.MaxTokens, got.Temperature)
	}
}

func TestGenerateMissingKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without an API key")
	}, "")

	if _, err := c.Generate(context.Background(), &provider.Request{Prompt: "x"}); !common.IsConfigurationError(err) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key"}}`},
		{"empty choices", http.StatusOK, `{"choices":[]}`},
		{"missing message", http.StatusOK, `{"choices":[{}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}, "secret")

			if _, err := c.Generate(context.Background(), &provider.Request{Prompt: "x"}); !common.IsBackendError(err) {
				t.Fatalf("err = %v, want BackendError", err)
			}
		})
	}
}

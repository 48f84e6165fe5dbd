package gemini

import (
	"context"
	"encoding/json"
	"errors"
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
	return NewClient(config.GeminiConfig{APIKey: apiKey, Model: "gemini-test", BaseURL: srv.URL}, 5*time.Second)
}

func testRequest() *provider.Request {
	return &provider.Request{Prompt: "xin chào", Temperature: 0.7, MaxOutputTokens: 1000}
}

func TestGenerateSuccess(t *testing.T) {
	var gotBody generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-test:generateContent" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if key := r.URL.Query().Get("key"); key != "secret" {
			t.Errorf("key = %q, want secret", key)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"- Phở Bò (ID: 12)"},{"text":"ignored"}]}}],"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":5,"totalTokenCount":15}}`))
	}, "secret")

	resp, err := c.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Content != "- Phở Bò (ID: 12)" {
		t.Errorf("content = %q", resp.Content)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("total tokens = %d, want 15", resp.Usage.TotalTokens)
	}

	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Role != "user" {
		t.Fatalf("contents = %+v", gotBody.Contents)
	}
	if p := gotBody.Contents[0].Parts; len(p) != 1 || p[0].Text == nil || *p[0].Text != "xin chào" {
		t.Errorf("parts = %+v", p)
	}
	if gotBody.GenerationConfig.Temperature != 0.7 || gotBody.GenerationConfig.MaxOutputTokens != 1000 {
		t.Errorf("generationConfig = %+v", gotBody.GenerationConfig)
	}
}

func TestGenerateMissingKey(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	}, "")

	_, err := c.Generate(context.Background(), testRequest())
	if !common.IsConfigurationError(err) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
	if called {
		t.Error("no request should be sent without an API key")
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}, "secret")

	_, err := c.Generate(context.Background(), testRequest())
	var backendErr *common.BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("err = %v, want BackendError", err)
	}
	if backendErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d", backendErr.StatusCode)
	}
	if backendErr.Payload == "" {
		t.Error("payload should carry the response body")
	}
}

func TestGenerateMalformedPayload(t *testing.T) {
	bodies := map[string]string{
		"no candidates": `{"candidates":[]}`,
		"no parts":      `{"candidates":[{"content":{"parts":[]}}]}`,
		"no text":       `{"candidates":[{"content":{"parts":[{}]}}]}`,
		"not json":      `<html>oops</html>`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}, "secret")

			if _, err := c.Generate(context.Background(), testRequest()); !common.IsBackendError(err) {
				t.Fatalf("err = %v, want BackendError", err)
			}
		})
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(config.GeminiConfig{APIKey: "secret", Model: "m", BaseURL: url}, time.Second)
	if _, err := c.Generate(context.Background(), testRequest()); !common.IsBackendError(err) {
		t.Fatalf("err = %v, want BackendError", err)
	}
}

func TestSDKClientMissingKey(t *testing.T) {
	c, err := NewSDKClient(context.Background(), config.GeminiConfig{Model: "gemini-test"})
	if err != nil {
		t.Fatalf("NewSDKClient: %v", err)
	}
	if _, err := c.Generate(context.Background(), testRequest()); !common.IsConfigurationError(err) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
	if c.Name() != "gemini-sdk" || c.GetModel() != "gemini-test" {
		t.Errorf("name/model = %s/%s", c.Name(), c.GetModel())
	}
}

func newTestSDKClient(t *testing.T, body string) *SDKClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewSDKClient(context.Background(), config.GeminiConfig{APIKey: "secret", Model: "gemini-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewSDKClient: %v", err)
	}
	return c
}

func TestSDKClientGenerateSuccess(t *testing.T) {
	c := newTestSDKClient(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"- Phở Bò (ID: 12)"}]}}]}`)

	resp, err := c.Generate(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if resp.Content != "- Phở Bò (ID: 12)" {
		t.Errorf("content = %q", resp.Content)
	}
}

func TestSDKClientMalformedPayload(t *testing.T) {
	bodies := map[string]string{
		"no candidates": `{"candidates":[]}`,
		"no parts":      `{"candidates":[{"content":{"parts":[]}}]}`,
		"no text":       `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"AAAA"}}]}}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newTestSDKClient(t, body)
			if _, err := c.Generate(context.Background(), testRequest()); !common.IsBackendError(err) {
				t.Fatalf("err = %v, want BackendError", err)
			}
		})
	}
}

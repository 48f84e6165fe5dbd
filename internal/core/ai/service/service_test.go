package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"
)

type stubProvider struct {
	reply string
	err   error
	delay time.Duration
	last  *provider.Request
}

func (p *stubProvider) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	p.last = req
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return &provider.Response{Content: p.reply}, nil
}

func (p *stubProvider) Name() string     { return "stub" }
func (p *stubProvider) GetModel() string { return "stub-model" }
func (p *stubProvider) Close() error     { return nil }

func TestGeneratePassesGenerationParams(t *testing.T) {
	cfg := config.Default()
	stub := &stubProvider{reply: "ok"}
	svc := NewServiceWithProvider(cfg, stub)

	got, err := svc.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "ok" {
		t.Errorf("reply = %q", got)
	}
	if stub.last.Prompt != "prompt" || stub.last.Temperature != 0.7 || stub.last.MaxOutputTokens != 1000 {
		t.Errorf("request = %+v", stub.last)
	}
}

func TestGenerateTimeoutIsBackendError(t *testing.T) {
	cfg := config.Default()
	cfg.AI.Timeout = 20 * time.Millisecond
	svc := NewServiceWithProvider(cfg, &stubProvider{reply: "late", delay: time.Second})

	_, err := svc.Generate(context.Background(), "prompt")
	if !common.IsBackendError(err) {
		t.Fatalf("err = %v, want BackendError", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want to wrap DeadlineExceeded", err)
	}
}

func TestGenerateErrorClassification(t *testing.T) {
	cfgErr := common.NewConfigurationError("Gemini API key")
	backendErr := common.NewBackendError("stub", 500, "boom", nil)

	tests := []struct {
		name    string
		err     error
		isCfg   bool
		backend bool
	}{
		{"configuration passes through", cfgErr, true, false},
		{"backend passes through", backendErr, false, true},
		{"plain error wrapped", errors.New("connection reset"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceWithProvider(config.Default(), &stubProvider{err: tt.err})
			_, err := svc.Generate(context.Background(), "prompt")
			if common.IsConfigurationError(err) != tt.isCfg {
				t.Errorf("IsConfigurationError = %v, want %v", !tt.isCfg, tt.isCfg)
			}
			if common.IsBackendError(err) != tt.backend {
				t.Errorf("IsBackendError = %v, want %v", !tt.backend, tt.backend)
			}
		})
	}
}

func TestNewServiceSelectsProvider(t *testing.T) {
	tests := map[string]string{
		config.ProviderGemini:     "gemini",
		config.ProviderGeminiSDK:  "gemini-sdk",
		config.ProviderOpenRouter: "openrouter",
	}

	for setting, want := range tests {
		cfg := config.Default()
		cfg.AI.Provider = setting
		svc, err := NewService(context.Background(), cfg)
		if err != nil {
			t.Fatalf("%s: %v", setting, err)
		}
		if got := svc.Provider().Name(); got != want {
			t.Errorf("%s: provider = %s, want %s", setting, got, want)
		}
	}

	cfg := config.Default()
	cfg.AI.Provider = "nope"
	if _, err := NewService(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown provider")
	}
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-chatbot/internal/core/ai/gemini"
	"recipe-chatbot/internal/core/ai/openrouter"
	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"
)

// Service AI 服務：套用逾時與生成參數、統一錯誤分類並記錄每次呼叫
type Service struct {
	config   *config.Config
	provider provider.Provider
}

// NewService 依 ai.provider 建立對應後端
func NewService(ctx context.Context, cfg *config.Config) (*Service, error) {
	var p provider.Provider
	switch cfg.AI.Provider {
	case config.ProviderGemini, "":
		p = gemini.NewClient(cfg.Gemini, cfg.AI.Timeout)
	case config.ProviderGeminiSDK:
		sdk, err := gemini.NewSDKClient(ctx, cfg.Gemini)
		if err != nil {
			return nil, err
		}
		p = sdk
	case config.ProviderOpenRouter:
		p = openrouter.NewClient(cfg.OpenRouter, cfg.AI.Timeout)
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.AI.Provider)
	}

	return NewServiceWithProvider(cfg, p), nil
}

// NewServiceWithProvider 使用指定後端建立服務
func NewServiceWithProvider(cfg *config.Config, p provider.Provider) *Service {
	return &Service{config: cfg, provider: p}
}

// Generate 送出指令並回傳回覆文字。
// ConfigurationError 與 BackendError 原樣回傳；逾時或其他錯誤一律包成 BackendError。
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	if s.config.AI.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.AI.Timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, &provider.Request{
		Prompt:          prompt,
		Temperature:     s.config.AI.Temperature,
		MaxOutputTokens: s.config.AI.MaxOutputTokens,
	})
	err = s.classify(ctx, err)
	common.LogAICall(s.provider.Name(), time.Since(start), err, common.RequestIDFromContext(ctx))
	if err != nil {
		return "", err
	}

	return resp.Content, nil
}

func (s *Service) classify(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if common.IsConfigurationError(err) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return common.NewBackendError(s.provider.Name(), 0, "",
			fmt.Errorf("timeout after %s: %w", s.config.AI.Timeout, context.DeadlineExceeded))
	}
	if common.IsBackendError(err) {
		return err
	}
	return common.NewBackendError(s.provider.Name(), 0, "", err)
}

// Provider 目前使用的後端
func (s *Service) Provider() provider.Provider {
	return s.provider
}

// Close 關閉後端連線
func (s *Service) Close() error {
	return s.provider.Close()
}

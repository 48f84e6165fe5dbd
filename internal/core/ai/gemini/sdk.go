package gemini

import (
	"context"
	"errors"
	"fmt"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"google.golang.org/genai"
)

const sdkProviderName = "gemini-sdk"

var _ provider.Provider = (*SDKClient)(nil)

// SDKClient 以官方 genai SDK 呼叫同一個 generateContent 端點
type SDKClient struct {
	client *genai.Client
	model  string
}

// NewSDKClient 創建 SDK 客戶端。
// 沒有 API Key 時不建立底層連線，Generate 會直接回傳 ConfigurationError。
func NewSDKClient(ctx context.Context, cfg config.GeminiConfig) (*SDKClient, error) {
	c := &SDKClient{model: cfg.Model}
	if cfg.APIKey == "" {
		return c, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

// Generate 生成回應，回傳第一個候選的第一段文字
func (c *SDKClient) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if c.client == nil {
		return nil, common.NewConfigurationError("Gemini API key")
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		MaxOutputTokens: int32(req.MaxOutputTokens),
	})
	if err != nil {
		return nil, common.NewBackendError(sdkProviderName, 0, "", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, common.NewBackendError(sdkProviderName, 0, "", errors.New("response has no candidates"))
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return nil, common.NewBackendError(sdkProviderName, 0, "", errors.New("first candidate has no content parts"))
	}
	if content.Parts[0].Text == "" {
		return nil, common.NewBackendError(sdkProviderName, 0, "", errors.New("first content part has no text"))
	}

	out := &provider.Response{Content: content.Parts[0].Text}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = provider.Usage{
			PromptTokens:     int(u.PromptTokenCount),
			CompletionTokens: int(u.CandidatesTokenCount),
			TotalTokens:      int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Name 後端名稱
func (c *SDKClient) Name() string { return sdkProviderName }

// GetModel 獲取當前使用的模型名稱
func (c *SDKClient) GetModel() string { return c.model }

// Close SDK 客戶端沒有需要釋放的資源
func (c *SDKClient) Close() error { return nil }

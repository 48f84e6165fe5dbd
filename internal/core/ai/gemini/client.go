// Package gemini 透過 Gemini generateContent 端點產生回覆
package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recipe-chatbot/internal/core/ai/provider"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	providerName     = "gemini"
	generateEndpoint = "/v1beta/models/{model}:generateContent"
)

var _ provider.Provider = (*Client)(nil)

// Client Gemini REST 客戶端
type Client struct {
	client *resty.Client
	apiKey string
	model  string
}

type part struct {
	Text *string `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// generateRequest generateContent 請求格式
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

// generateResponse 只取需要的欄位
type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// NewClient 創建新的 Gemini 客戶端
func NewClient(cfg config.GeminiConfig, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// Generate 生成回應，回傳第一個候選的第一段文字
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if c.apiKey == "" {
		return nil, common.NewConfigurationError("Gemini API key")
	}

	prompt := req.Prompt
	body := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: &prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}

	common.LogDebug("Sending request to Gemini",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(prompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		Post(generateEndpoint)
	if err != nil {
		return nil, common.NewBackendError(providerName, 0, "", fmt.Errorf("send request: %w", err))
	}

	if !resp.IsSuccess() {
		return nil, common.NewBackendError(providerName, resp.StatusCode(), resp.String(), nil)
	}

	var result generateResponse
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, common.NewBackendError(providerName, resp.StatusCode(), resp.String(), fmt.Errorf("parse response: %w", err))
	}

	text, err := firstText(&result)
	if err != nil {
		return nil, common.NewBackendError(providerName, resp.StatusCode(), resp.String(), err)
	}

	return &provider.Response{
		Content: text,
		Usage: provider.Usage{
			PromptTokens:     result.UsageMetadata.PromptTokenCount,
			CompletionTokens: result.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      result.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

func firstText(r *generateResponse) (string, error) {
	if len(r.Candidates) == 0 {
		return "", errors.New("response has no candidates")
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return "", errors.New("first candidate has no content parts")
	}
	if c.Parts[0].Text == nil {
		return "", errors.New("first content part has no text")
	}
	return *c.Parts[0].Text, nil
}

// Name 後端名稱
func (c *Client) Name() string { return providerName }

// GetModel 獲取當前使用的模型名稱
func (c *Client) GetModel() string { return c.model }

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

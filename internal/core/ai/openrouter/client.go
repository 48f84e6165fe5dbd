// Package openrouter 透過 OpenRouter chat completions 產生回覆
package openrouter

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

const providerName = "openrouter"

var _ provider.Provider = (*Client)(nil)

// Client OpenRouter API 客戶端
type Client struct {
	client *resty.Client
	apiKey string
	model  string
}

// Message 消息結構
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 表示 API 請求
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

// Response OpenRouter 響應結構
type Response struct {
	ID      string    `json:"id"`
	Choices []Choice  `json:"choices"`
	Usage   UsageInfo `json:"usage"`
}

// Choice 選擇結構
type Choice struct {
	Message *Message `json:"message"`
}

// UsageInfo 使用量信息
type UsageInfo struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// NewClient 創建新的 OpenRouter 客戶端
func NewClient(cfg config.OpenRouterConfig, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Title", "Recipe Chatbot")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{
		client: client,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

// Generate 生成回應
func (c *Client) Generate(ctx context.Context, req *provider.Request) (*provider.Response, error) {
	if c.apiKey == "" {
		return nil, common.NewConfigurationError("OpenRouter API key")
	}

	body := &Request{
		Model:       c.model,
		Messages:    []Message{{Role: "user", Content: req.Prompt}},
		MaxTokens:   req.MaxOutputTokens,
		Temperature: req.Temperature,
	}

	common.LogDebug("Sending request to OpenRouter",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(req.Prompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return nil, common.NewBackendError(providerName, 0, "", fmt.Errorf("send request: %w", err))
	}

	if !resp.IsSuccess() {
		return nil, common.NewBackendError(providerName, resp.StatusCode(), resp.String(), nil)
	}

	var result Response
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, common.NewBackendError(providerName, resp.StatusCode(), resp.String(), fmt.Errorf("parse response: %w", err))
	}

	if len(result.Choices) == 0 || result.Choices[0].Message == nil {
		return nil, common.NewBackendError(providerName, resp.StatusCode(), resp.String(), errors.New("no choices in response"))
	}

	return &provider.Response{
		Content: result.Choices[0].Message.Content,
		Usage: provider.Usage{
			PromptTokens:     result.Usage.PromptTokens,
			CompletionTokens: result.Usage.CompletionTokens,
			TotalTokens:      result.Usage.TotalTokens,
		},
	}, nil
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

// Package provider 定義生成式文字後端的共用契約
package provider

import "context"

// Request 送往後端的單一使用者指令
type Request struct {
	Prompt          string  `json:"prompt"`
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"max_output_tokens"`
}

// Usage token 用量，後端未回報時為零
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response 後端回覆的第一段文字
type Response struct {
	Content string `json:"content"`
	Usage   Usage  `json:"usage"`
}

// Provider 定義生成式後端介面。
// 缺少 API Key 時 Generate 必須在發出任何請求前回傳 ConfigurationError；
// 其餘失敗一律回傳 BackendError。
type Provider interface {
	// Generate 送出指令並取回完整回覆
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Name 後端名稱，用於日誌與錯誤訊息
	Name() string

	// GetModel 獲取當前使用的模型名稱
	GetModel() string

	// Close 關閉提供者連接
	Close() error
}

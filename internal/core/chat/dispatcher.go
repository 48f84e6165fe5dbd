package chat

import (
	"context"

	"recipe-chatbot/internal/core/catalog"
)

// Generator 生成式文字後端：送出指令、取回完整回覆
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Dispatcher 依意圖組出指令並呼叫後端
type Dispatcher struct {
	generator Generator
}

// NewDispatcher 創建新的指令分派器
func NewDispatcher(generator Generator) *Dispatcher {
	return &Dispatcher{generator: generator}
}

// Dispatch 產生意圖對應的指令並送往後端。
// 後端錯誤原樣回傳；只有 Suggestion 會從回覆中解析目錄 ID。
func (d *Dispatcher) Dispatch(ctx context.Context, intent Intent, message string, mentioned, all []catalog.Recipe) (*SuggestionResult, error) {
	prompt := BuildPrompt(intent, message, mentioned, all)

	reply, err := d.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result := &SuggestionResult{Response: reply, RecipeIDs: []int{}}
	if intent == IntentSuggestion {
		result.RecipeIDs = ExtractCatalogIDs(reply)
	}
	return result, nil
}

package catalog

import "context"

var _ Provider = (*MemoryProvider)(nil)

// MemoryProvider 以固定切片提供目錄
type MemoryProvider struct {
	recipes []Recipe
}

// NewMemoryProvider 創建記憶體目錄
func NewMemoryProvider(recipes []Recipe) *MemoryProvider {
	return &MemoryProvider{recipes: recipes}
}

// All 回傳目錄複本，呼叫端無法改動原始資料
func (p *MemoryProvider) All(ctx context.Context) ([]Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Recipe, len(p.recipes))
	copy(out, p.recipes)
	return out, nil
}

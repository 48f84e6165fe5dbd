package catalog

import (
	"context"
	"fmt"
	"os"

	"recipe-chatbot/internal/pkg/common"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var _ Provider = (*FileProvider)(nil)

// document 目錄檔格式，YAML 或 JSON 皆可
type document struct {
	Recipes []Recipe `yaml:"recipes"`
}

// FileProvider 每次呼叫都重新讀取目錄檔，不做快取
type FileProvider struct {
	path string
}

// NewFileProvider 創建檔案目錄
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// All 讀取並解析目錄檔
func (p *FileProvider) All(ctx context.Context) ([]Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", p.path, err)
	}

	recipes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", p.path, err)
	}
	return recipes, nil
}

// Decode 解析目錄文件內容並正規化難度欄位
func Decode(data []byte) ([]Recipe, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Recipes {
		normalizeDifficulty(&doc.Recipes[i])
	}
	return doc.Recipes, nil
}

// normalizeDifficulty 將 "easy"、"EASY" 等寫法統一，無法辨識時清空
func normalizeDifficulty(r *Recipe) {
	if r.Difficulty == nil {
		return
	}
	d, ok := ParseDifficulty(string(*r.Difficulty))
	if !ok {
		common.LogWarn("Unknown recipe difficulty, ignoring",
			zap.Int("recipe_id", r.ID),
			zap.String("difficulty", string(*r.Difficulty)),
		)
		r.Difficulty = nil
		return
	}
	r.Difficulty = &d
}

// Package catalog 提供聊天核心所需的食譜目錄快照。
// 目錄本身由外部儲存維護，這裡只定義讀取契約與幾種來源實作。
package catalog

import (
	"context"
	"strings"
)

// Difficulty 食譜難度
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty 不分大小寫解析難度，未知值回傳 false
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	default:
		return "", false
	}
}

// Recipe 目錄中的一道食譜，請求期間視為不可變
type Recipe struct {
	ID          int         `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description *string     `json:"description,omitempty" yaml:"description,omitempty"`
	PrepTime    *int        `json:"prepTime,omitempty" yaml:"prepTime,omitempty"`     // 分鐘
	CookTime    *int        `json:"cookTime,omitempty" yaml:"cookTime,omitempty"`     // 分鐘
	Difficulty  *Difficulty `json:"difficulty,omitempty" yaml:"difficulty,omitempty"` // 可為空
}

// Provider 回傳目前所有已知食譜，不做篩選或分頁
type Provider interface {
	All(ctx context.Context) ([]Recipe, error)
}

// StringPtr 方便建立選填欄位
func StringPtr(s string) *string { return &s }

// IntPtr 方便建立選填欄位
func IntPtr(n int) *int { return &n }

// DifficultyPtr 方便建立選填欄位
func DifficultyPtr(d Difficulty) *Difficulty { return &d }

package chat

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize 轉小寫並移除所有組合附加符號（NFD 分解後丟掉 Mn 類字元），
// 其他字元包含空白與標點原樣保留。"đ" 不是組合字元，因此不會變成 "d"。
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// transform.Chain 持有狀態，每次呼叫都建立新的 transformer 才能並行使用
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(text))
	if err != nil {
		return strings.ToLower(text)
	}
	return out
}

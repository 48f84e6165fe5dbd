package chat

import (
	"strings"

	"recipe-chatbot/internal/core/catalog"
)

// mentionMaxDistance 編輯距離小於此值即視為提及
const mentionMaxDistance = 3

// FindMentions 找出訊息提到的目錄食譜。
// 正規化後訊息包含標題、標題包含訊息，或兩者編輯距離小於 3 即算提及。
// 結果依目錄順序，並依 ID 去重。
func FindMentions(message string, recipes []catalog.Recipe) []catalog.Recipe {
	mentioned := make([]catalog.Recipe, 0)
	normalizedMessage := Normalize(message)
	seen := make(map[int]struct{}, len(recipes))

	for _, r := range recipes {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		title := Normalize(r.Title)
		if strings.Contains(normalizedMessage, title) ||
			strings.Contains(title, normalizedMessage) ||
			Levenshtein(normalizedMessage, title) < mentionMaxDistance {
			mentioned = append(mentioned, r)
			seen[r.ID] = struct{}{}
		}
	}

	return mentioned
}

// Levenshtein 以 rune 為單位計算編輯距離，插入、刪除、替換成本皆為 1
func Levenshtein(a, b string) int {
	s, t := []rune(a), []rune(b)
	if len(s) == 0 {
		return len(t)
	}
	if len(t) == 0 {
		return len(s)
	}

	prev := make([]int, len(t)+1)
	curr := make([]int, len(t)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(s); i++ {
		curr[0] = i
		for j := 1; j <= len(t); j++ {
			cost := 1
			if s[i-1] == t[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(t)]
}

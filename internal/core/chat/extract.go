package chat

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	numberedLine   = regexp.MustCompile(`^\d+\.`)
	listMarker     = regexp.MustCompile(`^[-•*\d.]+\s*`)
	catalogIDRegex = regexp.MustCompile(`ID:\s*(\d+)`)
)

// ExtractSuggestionLines 取出以 "-"、"•"、"*" 或 "1." 開頭的清單行，
// 去掉開頭的標記與其後空白，丟棄去標記後為空的行，保留原順序。
func ExtractSuggestionLines(text string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeftFunc(strings.TrimRight(line, "\r"), unicode.IsSpace)
		if !isListItem(line) {
			continue
		}
		item := listMarker.ReplaceAllString(line, "")
		if strings.TrimSpace(item) == "" {
			continue
		}
		lines = append(lines, item)
	}
	return lines
}

func isListItem(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*") ||
		numberedLine.MatchString(line)
}

// ExtractCatalogIDs 找出所有 "ID: 12" 形式的目錄 ID，依首次出現順序去重。
// "ID" 區分大小寫；超出 int 範圍的數字會被略過。
func ExtractCatalogIDs(text string) []int {
	ids := make([]int, 0)
	seen := make(map[int]struct{})
	for _, m := range catalogIDRegex.FindAllStringSubmatch(text, -1) {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

package chat

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

type intentRule struct {
	regex  *regexp.Regexp
	intent Intent
}

// intentRules 依優先順序排列，第一個命中的規則決定意圖。
// 關鍵字重疊時（例如同時出現「dinh dưỡng」與「gợi ý」）永遠由排在前面的規則勝出。
var intentRules = []intentRule{
	{regexp.MustCompile(`(dinh dưỡng|calo|protein|chất béo|carb|vitamin|khoáng chất|béo|lượng đường|bao nhiêu đường|nhiều đường|ít đường)`), IntentNutrition},
	{regexp.MustCompile(`(gợi ý|đề xuất|thêm món|món gì|nên ăn|món khác|món nào|giới thiệu)`), IntentSuggestion},
	{regexp.MustCompile(`(nấu|làm|chế biến|hướng dẫn|cách làm|bước|quy trình|công thức)`), IntentCooking},
	{regexp.MustCompile(`(nguyên liệu|thành phần|cần gì|mua gì|nguyên vật liệu)`), IntentIngredients},
	{regexp.MustCompile(`(mất bao lâu|thời gian|nhanh|lâu|phút|giờ)`), IntentTime},
	{regexp.MustCompile(`(khó|dễ|phức tạp|đơn giản|độ khó|người mới)`), IntentDifficulty},
	{regexp.MustCompile(`(thay thế|thay|không có|hết|khác|thay đổi)`), IntentSubstitution},
	{regexp.MustCompile(`(thực đơn|kế hoạch|tuần|ngày|bữa|lên món)`), IntentMealPlanning},
}

// Classify 將訊息轉小寫後依序套用規則，沒有規則命中時回傳 General。
// 這裡不移除聲調，關鍵字本身就帶越南文聲調；先轉成 NFC 讓分解形式的輸入也能命中。
func Classify(message string) Intent {
	lower := norm.NFC.String(strings.ToLower(message))
	for _, rule := range intentRules {
		if rule.regex.MatchString(lower) {
			return rule.intent
		}
	}
	return IntentGeneral
}

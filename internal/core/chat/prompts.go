package chat

import (
	"fmt"
	"strings"

	"recipe-chatbot/internal/core/catalog"
)

// 沒有提及任何食譜時各意圖從目錄前段取用的數量
const (
	nutritionFallbackSize = 5
	generalFallbackSize   = 10
	suggestionPoolSize    = 20
	mealPlanPoolSize      = 30
)

// 清單為空時的固定佔位句
const (
	noRecipesSelected  = "Không có món nào được chọn"
	noSpecificRecipe   = "Không có món cụ thể"
	noCurrentSelection = "Chưa có món nào được chọn"
	unknownDifficulty  = "Không rõ"
	noDescription      = "Không có mô tả"
)

// promptBuilder 由訊息、被提及食譜與完整目錄產生送往後端的指令
type promptBuilder func(message string, mentioned, all []catalog.Recipe) string

var promptBuilders = map[Intent]promptBuilder{
	IntentGeneral:      buildGeneralPrompt,
	IntentNutrition:    buildNutritionPrompt,
	IntentSuggestion:   buildSuggestionPrompt,
	IntentCooking:      buildCookingPrompt,
	IntentIngredients:  buildIngredientsPrompt,
	IntentTime:         buildTimePrompt,
	IntentDifficulty:   buildDifficultyPrompt,
	IntentSubstitution: buildSubstitutionPrompt,
	IntentMealPlanning: buildMealPlanPrompt,
}

// BuildPrompt 依意圖產生指令，未知意圖視為 General
func BuildPrompt(intent Intent, message string, mentioned, all []catalog.Recipe) string {
	build, ok := promptBuilders[intent]
	if !ok {
		build = buildGeneralPrompt
	}
	return build(message, mentioned, all)
}

func buildGeneralPrompt(message string, mentioned, all []catalog.Recipe) string {
	recipes := orFirst(mentioned, all, generalFallbackSize)
	context := "Không có món cụ thể được đề cập."
	if len(recipes) > 0 {
		context = "Các món được đề cập:\n" + formatRecipeList(recipes)
	}

	return fmt.Sprintf(`Bạn là trợ lý nấu ăn thông minh và thân thiện.
Người dùng hỏi: "%s"

%s

Hãy trả lời ngắn gọn trong vài dòng, thân thiện bằng tiếng Việt. Tập trung vào câu hỏi của người dùng.`,
		message, context)
}

func buildNutritionPrompt(message string, mentioned, all []catalog.Recipe) string {
	recipes := orFirst(mentioned, all, nutritionFallbackSize)

	return fmt.Sprintf(`Bạn là chuyên gia dinh dưỡng.
Người dùng hỏi: "%s"

Các món cần phân tích:
%s

Hãy phân tích:
1. Giá trị dinh dưỡng tổng quan (ước tính calo, protein, carb, chất béo)
2. Ưu điểm và hạn chế về dinh dưỡng
3. Gợi ý cân bằng nếu cần
4. Phù hợp với ai (người ăn kiêng, tăng cân, giảm cân, người tập thể hình...)

Trả lời bằng tiếng Việt, ngắn gọn, dễ hiểu, không quá chuyên môn.`,
		message, formatRecipeList(recipes))
}

func buildSuggestionPrompt(message string, mentioned, all []catalog.Recipe) string {
	current := noCurrentSelection
	if len(mentioned) > 0 {
		lines := make([]string, 0, len(mentioned))
		for _, r := range mentioned {
			lines = append(lines, fmt.Sprintf("- %s (ID: %d)", r.Title, r.ID))
		}
		current = strings.Join(lines, "\n")
	}

	selected := make(map[int]struct{}, len(mentioned))
	for _, r := range mentioned {
		selected[r.ID] = struct{}{}
	}
	candidates := make([]string, 0, suggestionPoolSize)
	for _, r := range all {
		if len(candidates) == suggestionPoolSize {
			break
		}
		if _, ok := selected[r.ID]; ok {
			continue
		}
		candidates = append(candidates, fmt.Sprintf("- %s (ID: %d) - %s - %s",
			r.Title, r.ID, difficultyLabel(r), descriptionText(r)))
	}
	others := noRecipesSelected
	if len(candidates) > 0 {
		others = strings.Join(candidates, "\n")
	}

	return fmt.Sprintf(`Bạn là chuyên gia gợi ý món ăn.
Người dùng hỏi: "%s"

Món hiện tại:
%s

Món có thể chọn thêm:
%s

Hãy đề xuất 3-5 món phù hợp nhất, mỗi món phải có:
- Tên món
- ID (số trong ngoặc)
- Lý do chọn (ngắn gọn)

Format: "- [Tên món] (ID: XX) - [Lý do]"
Trả lời bằng tiếng Việt.`,
		message, current, others)
}

func buildCookingPrompt(message string, mentioned, _ []catalog.Recipe) string {
	return fmt.Sprintf(`Bạn là đầu bếp chuyên nghiệp.
Người dùng hỏi: "%s"

Món cần hướng dẫn:
%s

Hãy cung cấp:
1. Các bước nấu chi tiết, rõ ràng
2. Mẹo để món ngon hơn
3. Lưu ý quan trọng (nhiệt độ, thời gian, kỹ thuật)
4. Cách biết món đã chín/đạt

Trả lời bằng tiếng Việt ngắn gọn, dễ hiểu cho người mới.`,
		message, formatRecipeList(mentioned))
}

func buildIngredientsPrompt(message string, mentioned, _ []catalog.Recipe) string {
	return fmt.Sprintf(`Bạn là chuyên gia về nguyên liệu.
Người dùng hỏi: "%s"

Món liên quan:
%s

Hãy tư vấn:
1. Danh sách nguyên liệu cần mua
2. Số lượng ước tính cho X người
3. Mẹo chọn nguyên liệu tươi ngon
4. Nơi mua và giá tham khảo (nếu biết)

Trả lời bằng tiếng Việt ngắn gọn, thực tế.`,
		message, formatRecipeList(mentioned))
}

func buildTimePrompt(message string, mentioned, _ []catalog.Recipe) string {
	return fmt.Sprintf(`Bạn là chuyên gia về thời gian nấu nướng.
Người dùng hỏi: "%s"

Thông tin món:
%s

Hãy:
1. Ước tính tổng thời gian thực tế (kể cả nghỉ, ủ...)
2. Chia nhỏ từng giai đoạn
3. Mẹo tiết kiệm thời gian
4. Gợi ý món nhanh hơn nếu người dùng vội

Trả lời bằng tiếng Việt ngắn gọn.`,
		message, formatTimeList(mentioned))
}

func buildDifficultyPrompt(message string, mentioned, _ []catalog.Recipe) string {
	return fmt.Sprintf(`Bạn là chuyên gia đào tạo nấu ăn.
Người dùng hỏi: "%s"

Các món:
%s

Hãy đánh giá:
1. Độ khó thực tế (Dễ/Trung bình/Khó)
2. Kỹ năng cần có
3. Phù hợp với người mới không
4. Món thay thế đơn giản hơn (nếu cần)

Trả lời bằng tiếng Việt ngắn gọn, khích lệ người mới.`,
		message, formatRecipeList(mentioned))
}

func buildSubstitutionPrompt(message string, mentioned, _ []catalog.Recipe) string {
	return fmt.Sprintf(`Bạn là chuyên gia thay thế nguyên liệu.
Người dùng hỏi: "%s"

Món liên quan:
%s

Hãy gợi ý:
1. Nguyên liệu có thể thay thế
2. Tỷ lệ thay thế
3. Ảnh hưởng đến hương vị
4. Phương án tốt nhất

Trả lời bằng tiếng Việt ngắn gọn, linh hoạt.`,
		message, formatRecipeList(mentioned))
}

// buildMealPlanPrompt 不看提及結果，直接取目錄前 30 筆
func buildMealPlanPrompt(message string, _, all []catalog.Recipe) string {
	pool := firstN(all, mealPlanPoolSize)
	available := noRecipesSelected
	if len(pool) > 0 {
		lines := make([]string, 0, len(pool))
		for _, r := range pool {
			lines = append(lines, fmt.Sprintf("- %s (ID: %d) - %s", r.Title, r.ID, difficultyLabel(r)))
		}
		available = strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`Bạn là chuyên gia dinh dưỡng và lập thực đơn.
Người dùng muốn: "%s"

Các món có sẵn:
%s

Hãy tạo thực đơn:
1. Phân bổ món theo bữa sáng/trưa/tối
2. Cân đối dinh dưỡng
3. Đa dạng món ăn
4. Kèm ID món để dễ tra cứu

Format: "**[Bữa]**: [Tên món] (ID: XX) - [Lý do]"
Trả lời bằng tiếng Việt ngắn gọn.`,
		message, available)
}

func formatRecipeList(recipes []catalog.Recipe) string {
	if len(recipes) == 0 {
		return noRecipesSelected
	}
	lines := make([]string, 0, len(recipes))
	for _, r := range recipes {
		lines = append(lines, fmt.Sprintf("- %s (ID: %d, %s): Chuẩn bị %dp, nấu %dp. %s",
			r.Title, r.ID, difficultyLabel(r), minutes(r.PrepTime), minutes(r.CookTime), descriptionText(r)))
	}
	return strings.Join(lines, "\n")
}

func formatTimeList(recipes []catalog.Recipe) string {
	if len(recipes) == 0 {
		return noSpecificRecipe
	}
	lines := make([]string, 0, len(recipes))
	for _, r := range recipes {
		lines = append(lines, fmt.Sprintf("- %s: Chuẩn bị %dp, Nấu %dp",
			r.Title, minutes(r.PrepTime), minutes(r.CookTime)))
	}
	return strings.Join(lines, "\n")
}

func orFirst(mentioned, all []catalog.Recipe, n int) []catalog.Recipe {
	if len(mentioned) > 0 {
		return mentioned
	}
	return firstN(all, n)
}

func firstN(recipes []catalog.Recipe, n int) []catalog.Recipe {
	if len(recipes) > n {
		return recipes[:n]
	}
	return recipes
}

func difficultyLabel(r catalog.Recipe) string {
	if r.Difficulty == nil {
		return unknownDifficulty
	}
	return string(*r.Difficulty)
}

func descriptionText(r catalog.Recipe) string {
	if r.Description == nil {
		return noDescription
	}
	return *r.Description
}

func minutes(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

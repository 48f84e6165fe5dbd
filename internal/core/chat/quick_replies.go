package chat

// quickReplies 每個意圖回應後附帶的快速回覆按鈕
var quickReplies = map[Intent][]QuickReply{
	IntentGeneral: {
		{Label: "Gợi ý món ăn", Action: "suggest"},
		{Label: "Lên thực đơn tuần", Action: "meal_plan"},
	},
	IntentNutrition: {
		{Label: "Gợi ý món ít calo", Action: "suggest"},
		{Label: "Lên thực đơn cân bằng", Action: "meal_plan"},
	},
	IntentSuggestion: {
		{Label: "Phân tích dinh dưỡng", Action: "nutrition"},
		{Label: "Hướng dẫn nấu", Action: "cooking"},
		{Label: "Gợi ý món khác", Action: "suggest"},
	},
	IntentCooking: {
		{Label: "Nguyên liệu cần mua", Action: "ingredients"},
		{Label: "Mất bao lâu?", Action: "time"},
	},
	IntentIngredients: {
		{Label: "Nguyên liệu thay thế", Action: "substitution"},
		{Label: "Hướng dẫn nấu", Action: "cooking"},
	},
	IntentTime: {
		{Label: "Gợi ý món nhanh", Action: "suggest"},
		{Label: "Hướng dẫn nấu", Action: "cooking"},
	},
	IntentDifficulty: {
		{Label: "Món dễ cho người mới", Action: "suggest"},
		{Label: "Hướng dẫn nấu", Action: "cooking"},
	},
	IntentSubstitution: {
		{Label: "Nguyên liệu cần mua", Action: "ingredients"},
		{Label: "Phân tích dinh dưỡng", Action: "nutrition"},
	},
	IntentMealPlanning: {
		{Label: "Phân tích dinh dưỡng", Action: "nutrition"},
		{Label: "Gợi ý món khác", Action: "suggest"},
	},
}

// QuickRepliesFor 回傳意圖對應按鈕的副本
func QuickRepliesFor(intent Intent) []QuickReply {
	replies := quickReplies[intent]
	out := make([]QuickReply, len(replies))
	copy(out, replies)
	return out
}

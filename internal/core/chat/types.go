// Package chat 把使用者的食譜問題轉成意圖、被提及的食譜與送往生成式後端的指令，
// 再把後端回覆解析成結構化的建議。
package chat

import "time"

// Intent 使用者訊息的意圖分類，每個請求恰好一個
type Intent int

const (
	IntentGeneral Intent = iota
	IntentNutrition
	IntentSuggestion
	IntentCooking
	IntentIngredients
	IntentTime
	IntentDifficulty
	IntentSubstitution
	IntentMealPlanning
)

// String 回傳對外使用的意圖名稱
func (i Intent) String() string {
	switch i {
	case IntentNutrition:
		return "Nutrition"
	case IntentSuggestion:
		return "Suggestion"
	case IntentCooking:
		return "Cooking"
	case IntentIngredients:
		return "Ingredients"
	case IntentTime:
		return "Time"
	case IntentDifficulty:
		return "Difficulty"
	case IntentSubstitution:
		return "Substitution"
	case IntentMealPlanning:
		return "MealPlanning"
	default:
		return "General"
	}
}

// 對話角色
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message 先前對話的一則訊息，只做透傳
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Request 聊天請求
type Request struct {
	Message             string    `json:"message" binding:"required"`
	ConversationHistory []Message `json:"conversationHistory,omitempty"`
}

// QuickReply 快速回覆按鈕
type QuickReply struct {
	Label  string `json:"label"`
	Action string `json:"action"` // "suggest"、"nutrition" 等
}

// Response 聊天回應
type Response struct {
	Reply              string       `json:"reply"`
	Intent             string       `json:"intent"`
	MentionedRecipes   []string     `json:"mentionedRecipes"`
	SuggestedRecipeIDs []int        `json:"suggestedRecipeIds"`
	Suggestions        []string     `json:"suggestions"`
	QuickReplies       []QuickReply `json:"quickReplies,omitempty"`
}

// SuggestionResult 後端回覆與從中解析出的目錄 ID
// 只有 Suggestion 意圖會填 RecipeIDs
type SuggestionResult struct {
	Response  string
	RecipeIDs []int
}

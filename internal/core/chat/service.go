package chat

import (
	"context"
	"net/http"
	"time"

	"recipe-chatbot/internal/core/catalog"
	"recipe-chatbot/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 聊天閘道：讀取目錄、比對提及、分類意圖、呼叫後端並組出回應
type Service struct {
	catalog    catalog.Provider
	dispatcher *Dispatcher
	warnSize   int
}

// NewService 創建新的聊天服務
// warnSize 為 0 時不檢查目錄大小
func NewService(provider catalog.Provider, generator Generator, warnSize int) *Service {
	return &Service{
		catalog:    provider,
		dispatcher: NewDispatcher(generator),
		warnSize:   warnSize,
	}
}

// Chat 處理一則聊天訊息。
// 目錄每次請求都重新讀取；後端錯誤原樣往上傳，由 HTTP 層轉成錯誤回應。
func (s *Service) Chat(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	requestID := common.RequestIDFromContext(ctx)

	recipes, err := s.catalog.All(ctx)
	if err != nil {
		common.LogError("讀取食譜目錄失敗",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, common.NewError(common.ErrCodeCatalogError, "食譜目錄無法讀取", http.StatusInternalServerError, err)
	}
	if s.warnSize > 0 && len(recipes) > s.warnSize {
		common.LogWarn("食譜目錄過大，逐筆比對可能變慢",
			zap.String("request_id", requestID),
			zap.Int("catalog_size", len(recipes)),
			zap.Int("warn_size", s.warnSize),
		)
	}

	mentioned := FindMentions(req.Message, recipes)
	intent := Classify(req.Message)

	common.LogDebug("聊天請求已分類",
		zap.String("request_id", requestID),
		zap.String("intent", intent.String()),
		zap.Int("mentioned", len(mentioned)),
		zap.Int("history", len(req.ConversationHistory)),
	)

	result, err := s.dispatcher.Dispatch(ctx, intent, req.Message, mentioned, recipes)
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(mentioned))
	for _, r := range mentioned {
		titles = append(titles, r.Title)
	}

	resp := &Response{
		Reply:              result.Response,
		Intent:             intent.String(),
		MentionedRecipes:   titles,
		SuggestedRecipeIDs: result.RecipeIDs,
		Suggestions:        ExtractSuggestionLines(result.Response),
		QuickReplies:       QuickRepliesFor(intent),
	}

	common.LogInfo("聊天請求完成",
		zap.String("request_id", requestID),
		zap.String("intent", resp.Intent),
		zap.Int("suggested_ids", len(resp.SuggestedRecipeIDs)),
		zap.Int("suggestions", len(resp.Suggestions)),
		zap.Duration("耗時", time.Since(start)),
	)

	return resp, nil
}

// Package chatbot 提供聊天建議的 HTTP 端點
package chatbot

import (
	"context"
	"net/http"

	"recipe-chatbot/internal/core/chat"
	"recipe-chatbot/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatService 聊天閘道
type ChatService interface {
	Chat(ctx context.Context, req *chat.Request) (*chat.Response, error)
}

// Handler 聊天處理器
type Handler struct {
	service ChatService
}

// NewHandler 創建新的聊天處理器
func NewHandler(service ChatService) *Handler {
	return &Handler{service: service}
}

// HandleAdvice 處理 POST /api/v1/chatbot/advice
func (h *Handler) HandleAdvice(c *gin.Context) {
	requestID := requestid.Get(c)
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req chat.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("無效的聊天請求",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "Invalid request format",
			Code:  common.ErrCodeInvalidRequest,
		})
		return
	}

	ctx := common.WithRequestID(c.Request.Context(), requestID)
	resp, err := h.service.Chat(ctx, &req)
	if err != nil {
		common.LogError("聊天請求失敗",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(common.StatusFor(err), common.ErrorResponse{
			Error: err.Error(),
			Code:  common.CodeFor(err),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

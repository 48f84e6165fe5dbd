package api

import (
	"time"

	"recipe-chatbot/internal/api/handlers/chatbot"
	"recipe-chatbot/internal/api/handlers/health"
	"recipe-chatbot/internal/api/middleware"
	"recipe-chatbot/internal/core/catalog"
	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, chatService chatbot.ChatService, catalogProvider catalog.Provider) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// requestid 必須在 Logger 之前，日誌才拿得到請求 ID
	router.Use(requestid.New())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Server.MaxBodyBytes > 0 {
		router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	}
	router.Use(middleware.RequestContext(cfg.Server.RequestTimeout))

	// 健康檢查路由
	router.GET("/health", health.HealthCheck(cfg))
	router.GET("/ready", health.ReadinessCheck(catalogProvider))
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	{
		chatHandler := chatbot.NewHandler(chatService)

		chatbotGroup := api.Group("/chatbot")
		{
			chatbotGroup.POST("/advice", chatHandler.HandleAdvice)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("catalog_source", cfg.Catalog.Source),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	return router
}

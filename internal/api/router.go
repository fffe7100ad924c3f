package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"nourish-generator/internal/api/handlers/health"
	recipeHandler "nourish-generator/internal/api/handlers/recipe"
	"nourish-generator/internal/api/middleware"
	"nourish-generator/internal/core/ai/cache"
	"nourish-generator/internal/core/ai/gemini"
	"nourish-generator/internal/core/ai/service"
	"nourish-generator/internal/core/feedback"
	recipeService "nourish-generator/internal/core/recipe"
	"nourish-generator/internal/infrastructure/config"
	"nourish-generator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 生成多份食譜可能要等模型很久，超時放寬到兩分鐘
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB)，純文字請求用不到更多
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 請求去重與限流
	dedup := middleware.NewDeduplicator(cfg.DedupWindow)
	router.Use(dedup.Middleware())
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("model", cfg.Gemini.Model),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化服務
	geminiClient := gemini.NewClient(&cfg.Gemini)
	aiService := service.NewService(geminiClient, cacheManager)
	recipeSvc := recipeService.NewService(aiService)
	feedbackSvc := feedback.NewService()

	common.LogInfo("Recipe services initialized successfully",
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.String("environment", cfg.App.Env),
	)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("cache_manager", cacheManager)
		c.Set("feedback_service", feedbackSvc)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 方法不符時回 405 並帶 Allow 標頭，前端誤用 GET 時能看出原因
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		allow := "POST"
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			allow = "GET"
		}
		c.Header("Allow", allow)
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": "Method not allowed",
		})
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由組
	api := router.Group("/api")
	{
		generateHandler := recipeHandler.NewHandler(recipeSvc)
		feedbackHandler := recipeHandler.NewFeedbackHandler(feedbackSvc)

		api.POST("/generate-recipe", generateHandler.Generate)
		api.POST("/recipe-feedback", feedbackHandler.Submit)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("cache_manager_initialized", cacheManager != nil),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}

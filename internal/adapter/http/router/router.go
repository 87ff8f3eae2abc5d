package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/cache"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/client"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/http/handler"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/http/middleware"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/repository/postgres"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/repository"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/config"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/usecase"
)

// Setup creates and configures the Gin router. The database and Redis client
// are optional; detection works without them.
func Setup(cfg *config.Config, detector service.Detector, db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Initialize translation client
	translateClient := client.NewTranslateClient(cfg.Translate.URL, cfg.Translate.APIKey, cfg.Translate.Timeout)
	translator := client.NewTranslator(translateClient)

	// Health endpoints. The translation probe is only wired when a service
	// URL is configured.
	var translatePinger handler.TranslationPinger
	if cfg.Translate.URL != "" {
		translatePinger = translateClient
	}
	healthHandler := handler.NewHealthHandler(detector, db, redisClient, translatePinger)
	router.GET("/", handler.Info)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize optional collaborators
	var historyRepo repository.DetectionRepository
	if db != nil {
		historyRepo = postgres.NewDetectionRepository(db)
	}

	var detectionCache repository.DetectionCache
	if redisClient != nil {
		detectionCache = cache.NewDetectionCache(redisClient, cfg.Redis.TTL, logger)
	}

	// Initialize usecases
	detectionUC := usecase.NewDetectionUsecase(detector, translator, historyRepo, detectionCache, logger)

	// Initialize handlers
	detectHandler := handler.NewDetectHandler(detectionUC)
	translateHandler := handler.NewTranslateHandler(detectionUC)
	languageHandler := handler.NewLanguageHandler(detectionUC)
	historyHandler := handler.NewHistoryHandler(detectionUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/detect", detectHandler.Detect)
		v1.POST("/detect/batch", detectHandler.DetectBatch)
		v1.GET("/languages", languageHandler.Languages)
		v1.POST("/translate", translateHandler.Translate)

		history := v1.Group("/history")
		{
			history.GET("", historyHandler.List)
			history.GET("/stats", historyHandler.Stats)
			history.GET("/:id", historyHandler.GetByID)
		}
	}

	return router
}

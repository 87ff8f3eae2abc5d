package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/detector"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/adapter/http/router"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/cache"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/config"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/database"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/infrastructure/logger"
	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/langid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Load model artifacts. The service starts without them and answers 503
	// until a model is trained into the configured directory.
	det := detector.New(cfg.Model.Dir, cfg.Model.LowConfidence, log)
	if err := det.Load(); err != nil {
		if errors.Is(err, langid.ErrModelNotFound) {
			log.Warn("No trained model found, starting without detection",
				zap.String("dir", cfg.Model.Dir))
		} else {
			log.Error("Failed to load model artifacts", zap.Error(err))
		}
	}

	// Watch the model directory so retraining is picked up without a restart
	var watcher *detector.Watcher
	if cfg.Model.Watch {
		watcher, err = detector.NewWatcher(det, log)
		if err != nil {
			log.Warn("Failed to watch model directory, live reload disabled", zap.Error(err))
			watcher = nil
		} else {
			watcher.Start()
		}
	}

	// Initialize database (optional, detection history only)
	var db *gorm.DB
	if cfg.Database.Enabled {
		db, err = database.NewPostgresDB(&cfg.Database)
		if err != nil {
			log.Warn("Failed to connect to database, continuing without history", zap.Error(err))
			db = nil
		} else {
			log.Info("Connected to database")
			if err := database.AutoMigrate(db); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			log.Info("Database migrations completed")
		}
	}

	// Initialize Redis (optional, continue without it)
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
		redisClient = nil
	} else {
		log.Info("Connected to Redis")
	}

	// Setup router
	r := router.Setup(cfg, det, db, redisClient, log)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Stop the model watcher
	if watcher != nil {
		watcher.Stop()
	}

	// Close database connection
	if db != nil {
		if sqlDB, err := db.DB(); err == nil && sqlDB != nil {
			_ = sqlDB.Close()
		}
	}

	// Close Redis connection
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info("Server exited")
	return nil
}

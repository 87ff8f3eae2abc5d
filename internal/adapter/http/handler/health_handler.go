package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/domain/service"
)

// TranslationPinger probes the external translation service
type TranslationPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	detector  service.Detector
	db        *gorm.DB
	redis     *redis.Client
	translate TranslationPinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(detector service.Detector, db *gorm.DB, redis *redis.Client, translate TranslationPinger) *HealthHandler {
	return &HealthHandler{
		detector:  detector,
		db:        db,
		redis:     redis,
		translate: translate,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	components := make(map[string]string)
	healthy := true

	// Check model
	if h.detector != nil && h.detector.Ready() {
		components["model"] = "ok"
	} else {
		components["model"] = "not loaded"
		healthy = false
	}

	// Check database
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			components["database"] = "error: " + err.Error()
			healthy = false
		} else if err := sqlDB.PingContext(ctx); err != nil {
			components["database"] = "error: " + err.Error()
			healthy = false
		} else {
			components["database"] = "ok"
		}
	} else {
		components["database"] = "not configured"
	}

	// Check Redis
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			components["redis"] = "error: " + err.Error()
			healthy = false
		} else {
			components["redis"] = "ok"
		}
	} else {
		components["redis"] = "not configured"
	}

	// Check the translation service. Advisory only: translation failures
	// must never affect detection, so this component cannot flip the
	// overall status.
	if h.translate != nil {
		if err := h.translate.Ping(ctx); err != nil {
			components["translation"] = "error: " + err.Error()
		} else {
			components["translation"] = "ok"
		}
	} else {
		components["translation"] = "not configured"
	}

	status := "healthy"
	httpStatus := http.StatusOK
	if !healthy {
		status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, HealthStatus{
		Status:     status,
		Components: components,
	})
}

// Ready handles GET /ready. The service is ready once model artifacts are
// loaded; database, cache, and translation are optional and never block
// readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.detector == nil || !h.detector.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "reason": "model not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// Info handles GET / with a short description of the API surface.
func Info(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{
		"message": "Language Detection API",
		"version": APIVersion,
		"endpoints": gin.H{
			"detect":       "POST /api/v1/detect",
			"batch_detect": "POST /api/v1/detect/batch",
			"languages":    "GET /api/v1/languages",
			"translate":    "POST /api/v1/translate",
			"history":      "GET /api/v1/history",
			"health":       "GET /health",
		},
	})
}

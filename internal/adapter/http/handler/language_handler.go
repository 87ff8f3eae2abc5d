package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/usecase"
)

// LanguageHandler handles language listing HTTP requests
type LanguageHandler struct {
	detectionUC usecase.DetectionUsecase
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(detectionUC usecase.DetectionUsecase) *LanguageHandler {
	return &LanguageHandler{detectionUC: detectionUC}
}

// Languages handles GET /api/v1/languages
func (h *LanguageHandler) Languages(c *gin.Context) {
	output, err := h.detectionUC.Languages(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

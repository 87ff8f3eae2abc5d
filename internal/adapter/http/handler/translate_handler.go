package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/usecase"
)

// TranslateHandler handles translation HTTP requests
type TranslateHandler struct {
	detectionUC usecase.DetectionUsecase
}

// NewTranslateHandler creates a new translation handler
func NewTranslateHandler(detectionUC usecase.DetectionUsecase) *TranslateHandler {
	return &TranslateHandler{detectionUC: detectionUC}
}

// Translate handles POST /api/v1/translate
func (h *TranslateHandler) Translate(c *gin.Context) {
	var input usecase.TranslateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.detectionUC.Translate(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

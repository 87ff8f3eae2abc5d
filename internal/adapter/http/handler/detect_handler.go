package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/usecase"
)

// DetectHandler handles language detection HTTP requests
type DetectHandler struct {
	detectionUC usecase.DetectionUsecase
}

// NewDetectHandler creates a new detection handler
func NewDetectHandler(detectionUC usecase.DetectionUsecase) *DetectHandler {
	return &DetectHandler{detectionUC: detectionUC}
}

// Detect handles POST /api/v1/detect
func (h *DetectHandler) Detect(c *gin.Context) {
	var input usecase.DetectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.detectionUC.Detect(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// DetectBatch handles POST /api/v1/detect/batch
func (h *DetectHandler) DetectBatch(c *gin.Context) {
	var input usecase.BatchDetectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		HandleInvalidRequest(c, err.Error())
		return
	}

	output, err := h.detectionUC.DetectBatch(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

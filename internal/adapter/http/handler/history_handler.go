package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ankitkumarmail009-pixel/language-detection-application/internal/usecase"
)

// HistoryHandler handles detection history HTTP requests
type HistoryHandler struct {
	detectionUC usecase.DetectionUsecase
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(detectionUC usecase.DetectionUsecase) *HistoryHandler {
	return &HistoryHandler{detectionUC: detectionUC}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(c *gin.Context) {
	pagination := ParsePagination(c)

	output, err := h.detectionUC.History(c.Request.Context(), pagination.Limit, pagination.Offset)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// Stats handles GET /api/v1/history/stats
func (h *HistoryHandler) Stats(c *gin.Context) {
	output, err := h.detectionUC.HistoryStats(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

// GetByID handles GET /api/v1/history/:id
func (h *HistoryHandler) GetByID(c *gin.Context) {
	id, err := ExtractUUIDParam(c, "id")
	if err != nil {
		HandleInvalidUUID(c, "detection id")
		return
	}

	output, err := h.detectionUC.GetDetection(c.Request.Context(), id)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, output)
}

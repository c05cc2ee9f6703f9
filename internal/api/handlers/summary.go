package handlers

import (
	"net/http"

	"lead-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SummaryHandler handles HTTP requests for database summaries
type SummaryHandler struct {
	summaryService service.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService service.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// GetSummary handles GET /summary
// @Summary Database summary
// @Description Aggregated counts over companies, leads, contacts and locations
// @Tags summary
// @Accept json
// @Produce json
// @Success 200 {object} service.Summary "Current summary"
// @Failure 500 {object} ErrorResponse "Failed to build summary"
// @Security BearerAuth
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summary, err := h.summaryService.Build()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

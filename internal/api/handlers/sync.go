package handlers

import (
	"errors"
	"net/http"

	apperrors "lead-portal-backend/internal/errors"
	"lead-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SyncHandler handles HTTP requests for CRM syncs
type SyncHandler struct {
	zohoService service.ZohoSyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(zohoService service.ZohoSyncServiceInterface) *SyncHandler {
	return &SyncHandler{
		zohoService: zohoService,
	}
}

// SyncZohoLeads handles POST /sync/zoho
// @Summary Sync leads from Zoho CRM
// @Description Run one bulk read cycle against Zoho CRM and import the resulting lead records
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} service.ImportResult "Import counts"
// @Failure 503 {object} ErrorResponse "Zoho credentials not configured"
// @Failure 502 {object} ErrorResponse "Bulk read job failed or timed out"
// @Failure 500 {object} ErrorResponse "Sync failed"
// @Security BearerAuth
// @Router /sync/zoho [post]
func (h *SyncHandler) SyncZohoLeads(c *gin.Context) {
	result, err := h.zohoService.SyncLeads()
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrZohoNotConfigured):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrBulkJobFailed),
			errors.Is(err, apperrors.ErrBulkJobTimeout),
			errors.Is(err, apperrors.ErrNoBulkResult):
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync leads", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

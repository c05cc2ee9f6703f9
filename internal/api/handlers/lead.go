package handlers

import (
	"errors"
	"net/http"

	apperrors "lead-portal-backend/internal/errors"
	"lead-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeadHandler handles HTTP requests for lead imports
type LeadHandler struct {
	importService service.ImportServiceInterface
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(importService service.ImportServiceInterface) *LeadHandler {
	return &LeadHandler{
		importService: importService,
	}
}

// UploadCSV handles POST /leads/upload
// @Summary Upload a leads CSV
// @Description Import a CSV lead export. The whole file is imported in one transaction; rows with a missing or already-imported record id are skipped.
// @Tags leads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with a header row"
// @Success 200 {object} service.ImportResult "Import counts"
// @Failure 400 {object} ErrorResponse "No file uploaded or empty filename"
// @Failure 500 {object} ErrorResponse "Import failed"
// @Security BearerAuth
// @Router /leads/upload [post]
func (h *LeadHandler) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrNoFileUploaded.Error()})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrEmptyFilename.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(file)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmptyCSV) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperrors.ErrEmptyCSV.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import leads", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

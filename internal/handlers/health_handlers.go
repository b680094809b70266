package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

// HealthHandler holds the health record service.
type HealthHandler struct {
	healthService services.HealthService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(hs services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: hs}
}

// CreateHealthRecord handles logging a new observation.
func (h *HealthHandler) CreateHealthRecord(c *gin.Context) {
	var req services.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	record, err := h.healthService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateHealthRecord: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create health record.", ""))
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetHealthRecords handles listing with optional batch and date filters.
func (h *HealthHandler) GetHealthRecords(c *gin.Context) {
	var filter models.HealthFilter
	filter.BatchID = stringQuery(c, "batchId")

	start, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}
	filter.StartDate = start
	end, ok := parseDateQuery(c, "endDate")
	if !ok {
		return
	}
	filter.EndDate = end

	records, err := h.healthService.List(filter)
	if err != nil {
		utils.LogError(err, "GetHealthRecords: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch health records.", ""))
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetHealthRecordByID handles fetching a single record.
func (h *HealthHandler) GetHealthRecordByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.healthService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrHealthRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Health record not found.", ""))
			return
		}
		utils.LogError(err, "GetHealthRecordByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch health record.", ""))
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateHealthRecord handles a partial update of an existing record.
func (h *HealthHandler) UpdateHealthRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	record, err := h.healthService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrHealthRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Health record not found.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateHealthRecord: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update health record.", ""))
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteHealthRecord handles removing a record.
func (h *HealthHandler) DeleteHealthRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.healthService.Delete(id); err != nil {
		if errors.Is(err, services.ErrHealthRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Health record not found.", ""))
			return
		}
		utils.LogError(err, "DeleteHealthRecord: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete health record.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health record deleted successfully"})
}

// GetHealthSummary handles the flock-wide summary.
func (h *HealthHandler) GetHealthSummary(c *gin.Context) {
	summary, err := h.healthService.Summary()
	if err != nil {
		utils.LogError(err, "GetHealthSummary: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute health summary.", ""))
		return
	}
	c.JSON(http.StatusOK, summary)
}

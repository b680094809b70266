package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

// FinancialHandler holds the financial service.
type FinancialHandler struct {
	financialService services.FinancialService
}

// NewFinancialHandler creates a new FinancialHandler.
func NewFinancialHandler(fs services.FinancialService) *FinancialHandler {
	return &FinancialHandler{financialService: fs}
}

// CreateFinancialEntry handles the creation of a new ledger entry.
func (h *FinancialHandler) CreateFinancialEntry(c *gin.Context) {
	var req services.CreateFinancialEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	entry, err := h.financialService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateFinancialEntry: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create financial entry.", ""))
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GetFinancialEntries handles listing with optional type, category and date
// range filters.
func (h *FinancialHandler) GetFinancialEntries(c *gin.Context) {
	var filter models.FinancialFilter
	filter.Type = stringQuery(c, "type")
	filter.Category = stringQuery(c, "category")

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

	entries, err := h.financialService.List(filter)
	if err != nil {
		utils.LogError(err, "GetFinancialEntries: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch financial entries.", ""))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetFinancialEntryByID handles fetching a single ledger entry.
func (h *FinancialHandler) GetFinancialEntryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.financialService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Financial entry not found.", ""))
			return
		}
		utils.LogError(err, "GetFinancialEntryByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch financial entry.", ""))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// UpdateFinancialEntry handles a partial update of an existing entry.
func (h *FinancialHandler) UpdateFinancialEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateFinancialEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	entry, err := h.financialService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Financial entry not found.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateFinancialEntry: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update financial entry.", ""))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteFinancialEntry handles removing a ledger entry.
func (h *FinancialHandler) DeleteFinancialEntry(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.financialService.Delete(id); err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Financial entry not found.", ""))
			return
		}
		utils.LogError(err, "DeleteFinancialEntry: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete financial entry.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Financial entry deleted successfully"})
}

// GetFinancialSummary handles the all-time ledger summary.
func (h *FinancialHandler) GetFinancialSummary(c *gin.Context) {
	summary, err := h.financialService.Summary()
	if err != nil {
		utils.LogError(err, "GetFinancialSummary: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute financial summary.", ""))
		return
	}
	c.JSON(http.StatusOK, summary)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

// ProductionHandler holds the production service.
type ProductionHandler struct {
	productionService services.ProductionService
}

// NewProductionHandler creates a new ProductionHandler.
func NewProductionHandler(ps services.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionService: ps}
}

// CreateProductionRecord handles logging a day's egg collection.
func (h *ProductionHandler) CreateProductionRecord(c *gin.Context) {
	var req services.CreateProductionRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	record, err := h.productionService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateProductionRecord: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create production record.", ""))
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetProductionRecords handles listing with optional batch and date filters.
func (h *ProductionHandler) GetProductionRecords(c *gin.Context) {
	var filter models.ProductionFilter
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

	records, err := h.productionService.List(filter)
	if err != nil {
		utils.LogError(err, "GetProductionRecords: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch production records.", ""))
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetProductionRecordByID handles fetching a single record.
func (h *ProductionHandler) GetProductionRecordByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	record, err := h.productionService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production record not found.", ""))
			return
		}
		utils.LogError(err, "GetProductionRecordByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch production record.", ""))
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateProductionRecord handles a partial update of an existing record.
func (h *ProductionHandler) UpdateProductionRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateProductionRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	record, err := h.productionService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production record not found.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateProductionRecord: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update production record.", ""))
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteProductionRecord handles removing a record.
func (h *ProductionHandler) DeleteProductionRecord(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.productionService.Delete(id); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Production record not found.", ""))
			return
		}
		utils.LogError(err, "DeleteProductionRecord: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete production record.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Production record deleted successfully"})
}

// GetProductionSummary handles the trailing-window summary. The days query
// parameter is optional; a non-numeric value is rejected.
func (h *ProductionHandler) GetProductionSummary(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondValidationFailed(c, "invalid days: expected an integer")
			return
		}
		days = parsed
	}

	summary, err := h.productionService.Summary(days)
	if err != nil {
		utils.LogError(err, "GetProductionSummary: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute production summary.", ""))
		return
	}
	c.JSON(http.StatusOK, summary)
}

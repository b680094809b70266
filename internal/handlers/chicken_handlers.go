package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

// ChickenHandler holds the chicken batch service.
type ChickenHandler struct {
	chickenService services.ChickenService
}

// NewChickenHandler creates a new ChickenHandler.
func NewChickenHandler(cs services.ChickenService) *ChickenHandler {
	return &ChickenHandler{chickenService: cs}
}

// CreateChickenBatch handles registering a new batch. A duplicate business
// batch id is a conflict, not a validation failure.
func (h *ChickenHandler) CreateChickenBatch(c *gin.Context) {
	var req services.CreateChickenBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	batch, err := h.chickenService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrBatchIDExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A batch with this batch id already exists.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateChickenBatch: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create chicken batch.", ""))
		return
	}
	c.JSON(http.StatusCreated, batch)
}

// GetChickenBatches handles listing with optional status and breed filters.
func (h *ChickenHandler) GetChickenBatches(c *gin.Context) {
	var filter models.ChickenBatchFilter
	filter.Status = stringQuery(c, "status")
	filter.Breed = stringQuery(c, "breed")

	batches, err := h.chickenService.List(filter)
	if err != nil {
		utils.LogError(err, "GetChickenBatches: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch chicken batches.", ""))
		return
	}
	c.JSON(http.StatusOK, batches)
}

// GetChickenBatchByID handles fetching a single batch by its numeric row id.
func (h *ChickenHandler) GetChickenBatchByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	batch, err := h.chickenService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Chicken batch not found.", ""))
			return
		}
		utils.LogError(err, "GetChickenBatchByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch chicken batch.", ""))
		return
	}
	c.JSON(http.StatusOK, batch)
}

// GetChickenBatchByBatchID handles fetching a single batch by its business
// batch id.
func (h *ChickenHandler) GetChickenBatchByBatchID(c *gin.Context) {
	batchID := c.Param("batchId")

	batch, err := h.chickenService.GetByBatchID(batchID)
	if err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Chicken batch not found.", ""))
			return
		}
		utils.LogError(err, "GetChickenBatchByBatchID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch chicken batch.", ""))
		return
	}
	c.JSON(http.StatusOK, batch)
}

// UpdateChickenBatch handles a partial update of an existing batch.
func (h *ChickenHandler) UpdateChickenBatch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateChickenBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	batch, err := h.chickenService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Chicken batch not found.", ""))
			return
		}
		if errors.Is(err, services.ErrBatchIDExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "A batch with this batch id already exists.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateChickenBatch: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update chicken batch.", ""))
		return
	}
	c.JSON(http.StatusOK, batch)
}

// DeleteChickenBatch handles removing a batch. Health records referencing it
// are left in place; the reference is a soft one.
func (h *ChickenHandler) DeleteChickenBatch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.chickenService.Delete(id); err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Chicken batch not found.", ""))
			return
		}
		utils.LogError(err, "DeleteChickenBatch: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete chicken batch.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Chicken batch deleted successfully"})
}

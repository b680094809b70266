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

// InventoryHandler holds the inventory service.
type InventoryHandler struct {
	inventoryService services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(is services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: is}
}

// CreateInventoryItem handles adding a new stock item.
func (h *InventoryHandler) CreateInventoryItem(c *gin.Context) {
	var req services.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.inventoryService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateInventoryItem: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create inventory item.", ""))
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetInventoryItems handles listing with an optional category filter and a
// belowReorderLevel flag.
func (h *InventoryHandler) GetInventoryItems(c *gin.Context) {
	var filter models.InventoryFilter
	filter.Category = stringQuery(c, "category")

	if raw := c.Query("belowReorderLevel"); raw != "" {
		below, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondValidationFailed(c, "invalid belowReorderLevel: expected true or false")
			return
		}
		filter.BelowReorderLevel = below
	}

	items, err := h.inventoryService.List(filter)
	if err != nil {
		utils.LogError(err, "GetInventoryItems: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory items.", ""))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetInventoryItemByID handles fetching a single item.
func (h *InventoryHandler) GetInventoryItemByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	item, err := h.inventoryService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", ""))
			return
		}
		utils.LogError(err, "GetInventoryItemByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch inventory item.", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateInventoryItem handles a partial update of an existing item.
func (h *InventoryHandler) UpdateInventoryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.inventoryService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateInventoryItem: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update inventory item.", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteInventoryItem handles removing an item.
func (h *InventoryHandler) DeleteInventoryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", ""))
			return
		}
		utils.LogError(err, "DeleteInventoryItem: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete inventory item.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}

// AdjustInventoryQuantity applies a signed delta to an item's quantity. A
// delta that would land below zero is a conflict and leaves the item as is.
func (h *InventoryHandler) AdjustInventoryQuantity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	item, err := h.inventoryService.Adjust(id, *req.Adjustment)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Inventory item not found.", ""))
			return
		}
		if errors.Is(err, services.ErrInsufficientQuantity) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Adjustment would drive quantity below zero.", ""))
			return
		}
		utils.LogError(err, "AdjustInventoryQuantity: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to adjust inventory quantity.", ""))
		return
	}
	c.JSON(http.StatusOK, item)
}

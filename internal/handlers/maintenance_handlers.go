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

// MaintenanceHandler holds the maintenance task service.
type MaintenanceHandler struct {
	maintenanceService services.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler.
func NewMaintenanceHandler(ms services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceService: ms}
}

// CreateMaintenanceTask handles adding a new coop chore.
func (h *MaintenanceHandler) CreateMaintenanceTask(c *gin.Context) {
	var req services.CreateMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	task, err := h.maintenanceService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateMaintenanceTask: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create maintenance task.", ""))
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetMaintenanceTasks handles listing with optional completed, category and
// priority filters.
func (h *MaintenanceHandler) GetMaintenanceTasks(c *gin.Context) {
	var filter models.MaintenanceFilter
	filter.Category = stringQuery(c, "category")
	filter.Priority = stringQuery(c, "priority")

	if raw := c.Query("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondValidationFailed(c, "invalid completed: expected true or false")
			return
		}
		filter.Completed = &completed
	}

	tasks, err := h.maintenanceService.List(filter)
	if err != nil {
		utils.LogError(err, "GetMaintenanceTasks: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch maintenance tasks.", ""))
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetMaintenanceTaskByID handles fetching a single task.
func (h *MaintenanceHandler) GetMaintenanceTaskByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.maintenanceService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance task not found.", ""))
			return
		}
		utils.LogError(err, "GetMaintenanceTaskByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch maintenance task.", ""))
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateMaintenanceTask handles a partial update of an existing task.
func (h *MaintenanceHandler) UpdateMaintenanceTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateMaintenanceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	task, err := h.maintenanceService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance task not found.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateMaintenanceTask: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update maintenance task.", ""))
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteMaintenanceTask handles removing a task.
func (h *MaintenanceHandler) DeleteMaintenanceTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.maintenanceService.Delete(id); err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance task not found.", ""))
			return
		}
		utils.LogError(err, "DeleteMaintenanceTask: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete maintenance task.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance task deleted successfully"})
}

// ToggleMaintenanceTask flips the completed flag and returns the new state.
func (h *MaintenanceHandler) ToggleMaintenanceTask(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	task, err := h.maintenanceService.Toggle(id)
	if err != nil {
		if errors.Is(err, services.ErrTaskNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Maintenance task not found.", ""))
			return
		}
		utils.LogError(err, "ToggleMaintenanceTask: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to toggle maintenance task.", ""))
		return
	}
	c.JSON(http.StatusOK, task)
}

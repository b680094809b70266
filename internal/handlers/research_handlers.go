package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
	"github.com/mukeshkumar286/chickegg/pkg/utils"
)

// ResearchHandler holds the research note service.
type ResearchHandler struct {
	researchService services.ResearchService
}

// NewResearchHandler creates a new ResearchHandler.
func NewResearchHandler(rs services.ResearchService) *ResearchHandler {
	return &ResearchHandler{researchService: rs}
}

// CreateResearchNote handles adding a new note.
func (h *ResearchHandler) CreateResearchNote(c *gin.Context) {
	var req services.CreateResearchNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	note, err := h.researchService.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "CreateResearchNote: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create research note.", ""))
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetResearchNotes handles listing with optional category, date and tag
// filters. Tags arrive comma separated and match any overlap.
func (h *ResearchHandler) GetResearchNotes(c *gin.Context) {
	var filter models.ResearchFilter
	filter.Category = stringQuery(c, "category")

	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				filter.Tags = append(filter.Tags, tag)
			}
		}
	}

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

	notes, err := h.researchService.List(filter)
	if err != nil {
		utils.LogError(err, "GetResearchNotes: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch research notes.", ""))
		return
	}
	c.JSON(http.StatusOK, notes)
}

// GetResearchNoteByID handles fetching a single note.
func (h *ResearchHandler) GetResearchNoteByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	note, err := h.researchService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Research note not found.", ""))
			return
		}
		utils.LogError(err, "GetResearchNoteByID: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch research note.", ""))
		return
	}
	c.JSON(http.StatusOK, note)
}

// UpdateResearchNote handles a partial update of an existing note.
func (h *ResearchHandler) UpdateResearchNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req services.UpdateResearchNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	note, err := h.researchService.Update(id, req)
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Research note not found.", ""))
			return
		}
		if errors.Is(err, services.ErrValidation) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "UpdateResearchNote: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update research note.", ""))
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteResearchNote handles removing a note.
func (h *ResearchHandler) DeleteResearchNote(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.researchService.Delete(id); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Research note not found.", ""))
			return
		}
		utils.LogError(err, "DeleteResearchNote: service error")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete research note.", ""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Research note deleted successfully"})
}

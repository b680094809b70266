package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

var ErrTaskNotFound = errors.New("maintenance task not found")

var taskPriorities = map[string]bool{
	models.PriorityLow:    true,
	models.PriorityMedium: true,
	models.PriorityHigh:   true,
}

// CreateMaintenanceTaskRequest carries a new task. Priority defaults to
// medium and Completed to false.
type CreateMaintenanceTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Category    string     `json:"category" binding:"required"`
	Priority    string     `json:"priority"`
}

// UpdateMaintenanceTaskRequest is a partial update; nil fields are left as is.
// Completed can be set directly here as well as through the toggle.
type UpdateMaintenanceTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
}

// MaintenanceService owns coop chore operations.
type MaintenanceService interface {
	Create(req CreateMaintenanceTaskRequest) (*models.MaintenanceTask, error)
	List(filter models.MaintenanceFilter) ([]models.MaintenanceTask, error)
	GetByID(id int64) (*models.MaintenanceTask, error)
	Update(id int64, req UpdateMaintenanceTaskRequest) (*models.MaintenanceTask, error)
	Delete(id int64) error
	Toggle(id int64) (*models.MaintenanceTask, error)
}

type maintenanceService struct {
	maintenanceRepo repositories.MaintenanceRepository
	db              *sql.DB
}

// NewMaintenanceService creates a new instance of MaintenanceService.
func NewMaintenanceService(repo repositories.MaintenanceRepository, db *sql.DB) MaintenanceService {
	return &maintenanceService{maintenanceRepo: repo, db: db}
}

func (s *maintenanceService) Create(req CreateMaintenanceTaskRequest) (*models.MaintenanceTask, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !taskPriorities[priority] {
		return nil, fmt.Errorf("%w: priority must be one of low, medium, high", ErrValidation)
	}

	task := &models.MaintenanceTask{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   false,
		Category:    req.Category,
		Priority:    priority,
	}

	if err := s.maintenanceRepo.Create(s.db, task); err != nil {
		return nil, fmt.Errorf("failed to create maintenance task: %w", err)
	}
	return task, nil
}

func (s *maintenanceService) List(filter models.MaintenanceFilter) ([]models.MaintenanceTask, error) {
	tasks, err := s.maintenanceRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance tasks: %w", err)
	}
	return tasks, nil
}

func (s *maintenanceService) GetByID(id int64) (*models.MaintenanceTask, error) {
	task, err := s.maintenanceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance task: %w", err)
	}
	return task, nil
}

func (s *maintenanceService) Update(id int64, req UpdateMaintenanceTaskRequest) (*models.MaintenanceTask, error) {
	task, err := s.maintenanceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find maintenance task for update: %w", err)
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Priority != nil {
		if !taskPriorities[*req.Priority] {
			return nil, fmt.Errorf("%w: priority must be one of low, medium, high", ErrValidation)
		}
		task.Priority = *req.Priority
	}

	if err := s.maintenanceRepo.Update(s.db, task); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update maintenance task: %w", err)
	}
	return task, nil
}

func (s *maintenanceService) Delete(id int64) error {
	if err := s.maintenanceRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete maintenance task: %w", err)
	}
	return nil
}

// Toggle flips the completed flag in a single statement so concurrent
// toggles never lose an update.
func (s *maintenanceService) Toggle(id int64) (*models.MaintenanceTask, error) {
	task, err := s.maintenanceRepo.ToggleCompletion(s.db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to toggle maintenance task: %w", err)
	}
	return task, nil
}

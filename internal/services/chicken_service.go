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

var (
	ErrBatchNotFound = errors.New("chicken batch not found")
	ErrBatchIDExists = errors.New("batch id already in use")
)

var batchStatuses = map[string]bool{
	models.BatchStatusActive:   true,
	models.BatchStatusSold:     true,
	models.BatchStatusDeceased: true,
}

// CreateChickenBatchRequest carries a new batch. Status defaults to active
// when omitted.
type CreateChickenBatchRequest struct {
	BatchID         string     `json:"batchId" binding:"required"`
	Breed           string     `json:"breed" binding:"required"`
	Quantity        int        `json:"quantity" binding:"required,gt=0"`
	AcquisitionDate *time.Time `json:"acquisitionDate"`
	Status          string     `json:"status"`
	Notes           *string    `json:"notes"`
}

// UpdateChickenBatchRequest is a partial update; nil fields are left as is.
type UpdateChickenBatchRequest struct {
	BatchID         *string    `json:"batchId"`
	Breed           *string    `json:"breed"`
	Quantity        *int       `json:"quantity"`
	AcquisitionDate *time.Time `json:"acquisitionDate"`
	Status          *string    `json:"status"`
	Notes           *string    `json:"notes"`
}

// ChickenService owns batch operations. BatchID uniqueness is enforced both
// here and by the database constraint.
type ChickenService interface {
	Create(req CreateChickenBatchRequest) (*models.ChickenBatch, error)
	List(filter models.ChickenBatchFilter) ([]models.ChickenBatch, error)
	GetByID(id int64) (*models.ChickenBatch, error)
	GetByBatchID(batchID string) (*models.ChickenBatch, error)
	Update(id int64, req UpdateChickenBatchRequest) (*models.ChickenBatch, error)
	Delete(id int64) error
}

type chickenService struct {
	chickenRepo repositories.ChickenRepository
	db          *sql.DB
}

// NewChickenService creates a new instance of ChickenService.
func NewChickenService(repo repositories.ChickenRepository, db *sql.DB) ChickenService {
	return &chickenService{chickenRepo: repo, db: db}
}

func (s *chickenService) Create(req CreateChickenBatchRequest) (*models.ChickenBatch, error) {
	if strings.TrimSpace(req.BatchID) == "" {
		return nil, fmt.Errorf("%w: batch id cannot be empty", ErrValidation)
	}
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	status := req.Status
	if status == "" {
		status = models.BatchStatusActive
	}
	if !batchStatuses[status] {
		return nil, fmt.Errorf("%w: status must be one of active, sold, deceased", ErrValidation)
	}

	batch := &models.ChickenBatch{
		BatchID:         req.BatchID,
		Breed:           req.Breed,
		Quantity:        req.Quantity,
		AcquisitionDate: time.Now(),
		Status:          status,
		Notes:           req.Notes,
	}
	if req.AcquisitionDate != nil {
		batch.AcquisitionDate = *req.AcquisitionDate
	}

	if err := s.chickenRepo.Create(s.db, batch); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrBatchIDExists
		}
		return nil, fmt.Errorf("failed to create chicken batch: %w", err)
	}
	return batch, nil
}

func (s *chickenService) List(filter models.ChickenBatchFilter) ([]models.ChickenBatch, error) {
	batches, err := s.chickenRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list chicken batches: %w", err)
	}
	return batches, nil
}

func (s *chickenService) GetByID(id int64) (*models.ChickenBatch, error) {
	batch, err := s.chickenRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get chicken batch: %w", err)
	}
	return batch, nil
}

// GetByBatchID looks up a batch by its business key rather than the row id.
func (s *chickenService) GetByBatchID(batchID string) (*models.ChickenBatch, error) {
	batch, err := s.chickenRepo.GetByBatchID(batchID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get chicken batch: %w", err)
	}
	return batch, nil
}

func (s *chickenService) Update(id int64, req UpdateChickenBatchRequest) (*models.ChickenBatch, error) {
	batch, err := s.chickenRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to find chicken batch for update: %w", err)
	}

	if req.BatchID != nil {
		if strings.TrimSpace(*req.BatchID) == "" {
			return nil, fmt.Errorf("%w: batch id cannot be empty", ErrValidation)
		}
		batch.BatchID = *req.BatchID
	}
	if req.Breed != nil {
		batch.Breed = *req.Breed
	}
	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
		batch.Quantity = *req.Quantity
	}
	if req.AcquisitionDate != nil {
		batch.AcquisitionDate = *req.AcquisitionDate
	}
	if req.Status != nil {
		if !batchStatuses[*req.Status] {
			return nil, fmt.Errorf("%w: status must be one of active, sold, deceased", ErrValidation)
		}
		batch.Status = *req.Status
	}
	if req.Notes != nil {
		batch.Notes = req.Notes
	}

	if err := s.chickenRepo.Update(s.db, batch); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrBatchIDExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to update chicken batch: %w", err)
	}
	return batch, nil
}

func (s *chickenService) Delete(id int64) error {
	if err := s.chickenRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBatchNotFound
		}
		return fmt.Errorf("failed to delete chicken batch: %w", err)
	}
	return nil
}

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
	ErrItemNotFound         = errors.New("inventory item not found")
	ErrInsufficientQuantity = errors.New("adjustment would drive quantity below zero")
)

// CreateInventoryItemRequest carries a new stock item. Quantity defaults to
// zero; LastUpdated is stamped by the service.
type CreateInventoryItemRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Quantity     *float64 `json:"quantity"`
	Unit         string   `json:"unit" binding:"required"`
	ReorderLevel *float64 `json:"reorderLevel"`
	Notes        *string  `json:"notes"`
}

// UpdateInventoryItemRequest is a partial update; nil fields are left as is.
type UpdateInventoryItemRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
	ReorderLevel *float64 `json:"reorderLevel"`
	Notes        *string  `json:"notes"`
}

// AdjustQuantityRequest is the delta applied by the adjust operation.
// Positive restocks, negative consumes. The pointer lets a zero delta bind
// as present rather than missing.
type AdjustQuantityRequest struct {
	Adjustment *float64 `json:"adjustment" binding:"required"`
}

// InventoryService owns stock operations. Adjust is atomic; the floor at
// zero is enforced in the same statement that applies the delta.
type InventoryService interface {
	Create(req CreateInventoryItemRequest) (*models.InventoryItem, error)
	List(filter models.InventoryFilter) ([]models.InventoryItem, error)
	GetByID(id int64) (*models.InventoryItem, error)
	Update(id int64, req UpdateInventoryItemRequest) (*models.InventoryItem, error)
	Delete(id int64) error
	Adjust(id int64, adjustment float64) (*models.InventoryItem, error)
}

type inventoryService struct {
	inventoryRepo repositories.InventoryRepository
	db            *sql.DB
}

// NewInventoryService creates a new instance of InventoryService.
func NewInventoryService(repo repositories.InventoryRepository, db *sql.DB) InventoryService {
	return &inventoryService{inventoryRepo: repo, db: db}
}

func (s *inventoryService) Create(req CreateInventoryItemRequest) (*models.InventoryItem, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}
	var quantity float64
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
		}
		quantity = *req.Quantity
	}

	item := &models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     quantity,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		LastUpdated:  time.Now(),
		Notes:        req.Notes,
	}

	if err := s.inventoryRepo.Create(s.db, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) List(filter models.InventoryFilter) ([]models.InventoryItem, error) {
	items, err := s.inventoryRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	if !filter.BelowReorderLevel {
		return items, nil
	}
	filtered := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.ReorderLevel != nil && item.Quantity <= *item.ReorderLevel {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *inventoryService) GetByID(id int64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) Update(id int64, req UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find inventory item for update: %w", err)
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
		}
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity cannot be negative", ErrValidation)
		}
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = req.ReorderLevel
	}
	if req.Notes != nil {
		item.Notes = req.Notes
	}
	item.LastUpdated = time.Now()

	if err := s.inventoryRepo.Update(s.db, item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return item, nil
}

func (s *inventoryService) Delete(id int64) error {
	if err := s.inventoryRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrItemNotFound
		}
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (s *inventoryService) Adjust(id int64, adjustment float64) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.AdjustQuantity(s.db, id, adjustment)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		if errors.Is(err, repositories.ErrQuantityFloor) {
			return nil, ErrInsufficientQuantity
		}
		return nil, fmt.Errorf("failed to adjust inventory quantity: %w", err)
	}
	return item, nil
}

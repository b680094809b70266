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

var ErrEntryNotFound = errors.New("financial entry not found")

var financialEntryTypes = map[string]bool{
	models.FinancialTypeIncome:     true,
	models.FinancialTypeExpense:    true,
	models.FinancialTypeInvestment: true,
	models.FinancialTypeCapital:    true,
}

// CreateFinancialEntryRequest carries a new ledger entry. Date defaults to
// now when omitted; Amount is always positive, the type carries the sign.
type CreateFinancialEntryRequest struct {
	Date        *time.Time `json:"date"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Type        string     `json:"type" binding:"required"`
	Category    string     `json:"category" binding:"required"`
	Description *string    `json:"description"`
	Tags        []string   `json:"tags"`
}

// UpdateFinancialEntryRequest is a partial update; nil fields are left as is.
type UpdateFinancialEntryRequest struct {
	Date        *time.Time `json:"date"`
	Amount      *float64   `json:"amount"`
	Type        *string    `json:"type"`
	Category    *string    `json:"category"`
	Description *string    `json:"description"`
	Tags        []string   `json:"tags"`
}

// FinancialService owns the ledger operations and the all-time summary.
type FinancialService interface {
	Create(req CreateFinancialEntryRequest) (*models.FinancialEntry, error)
	List(filter models.FinancialFilter) ([]models.FinancialEntry, error)
	GetByID(id int64) (*models.FinancialEntry, error)
	Update(id int64, req UpdateFinancialEntryRequest) (*models.FinancialEntry, error)
	Delete(id int64) error
	Summary() (*models.FinancialSummary, error)
}

type financialService struct {
	financialRepo repositories.FinancialRepository
	db            *sql.DB
}

// NewFinancialService creates a new instance of FinancialService.
func NewFinancialService(repo repositories.FinancialRepository, db *sql.DB) FinancialService {
	return &financialService{financialRepo: repo, db: db}
}

func (s *financialService) Create(req CreateFinancialEntryRequest) (*models.FinancialEntry, error) {
	if !financialEntryTypes[req.Type] {
		return nil, fmt.Errorf("%w: type must be one of income, expense, investment, capital", ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category cannot be empty", ErrValidation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	entry := &models.FinancialEntry{
		Date:        time.Now(),
		Amount:      req.Amount,
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := s.financialRepo.Create(s.db, entry); err != nil {
		return nil, fmt.Errorf("failed to create financial entry: %w", err)
	}
	return entry, nil
}

func (s *financialService) List(filter models.FinancialFilter) ([]models.FinancialEntry, error) {
	entries, err := s.financialRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial entries: %w", err)
	}
	return entries, nil
}

func (s *financialService) GetByID(id int64) (*models.FinancialEntry, error) {
	entry, err := s.financialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get financial entry: %w", err)
	}
	return entry, nil
}

func (s *financialService) Update(id int64, req UpdateFinancialEntryRequest) (*models.FinancialEntry, error) {
	entry, err := s.financialRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to find financial entry for update: %w", err)
	}

	if req.Date != nil {
		entry.Date = *req.Date
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
		}
		entry.Amount = *req.Amount
	}
	if req.Type != nil {
		if !financialEntryTypes[*req.Type] {
			return nil, fmt.Errorf("%w: type must be one of income, expense, investment, capital", ErrValidation)
		}
		entry.Type = *req.Type
	}
	if req.Category != nil {
		if strings.TrimSpace(*req.Category) == "" {
			return nil, fmt.Errorf("%w: category cannot be empty if provided", ErrValidation)
		}
		entry.Category = *req.Category
	}
	if req.Description != nil {
		entry.Description = req.Description
	}
	if req.Tags != nil {
		entry.Tags = req.Tags
	}

	if err := s.financialRepo.Update(s.db, entry); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to update financial entry: %w", err)
	}
	return entry, nil
}

func (s *financialService) Delete(id int64) error {
	if err := s.financialRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete financial entry: %w", err)
	}
	return nil
}

// Summary scans the full ledger; there is no date window, the figures are
// all-time by contract.
func (s *financialService) Summary() (*models.FinancialSummary, error) {
	entries, err := s.financialRepo.List(models.FinancialFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for summary: %w", err)
	}
	summary := computeFinancialSummary(entries)
	return &summary, nil
}

func computeFinancialSummary(entries []models.FinancialEntry) models.FinancialSummary {
	summary := models.FinancialSummary{
		ExpensesByCategory: map[string]float64{},
	}
	for _, entry := range entries {
		switch entry.Type {
		case models.FinancialTypeCapital:
			summary.TotalCapital += entry.Amount
		case models.FinancialTypeInvestment:
			summary.TotalInvestments += entry.Amount
		case models.FinancialTypeIncome:
			summary.TotalIncome += entry.Amount
		case models.FinancialTypeExpense:
			summary.TotalExpenses += entry.Amount
			summary.ExpensesByCategory[entry.Category] += entry.Amount
		}
	}
	return summary
}

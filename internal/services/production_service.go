package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

var ErrRecordNotFound = errors.New("production record not found")

// DefaultProductionWindowDays is the trailing window for the production
// summary when the caller does not provide one.
const DefaultProductionWindowDays = 30

// CreateProductionRecordRequest carries a new egg-collection entry.
// Grade counts are optional and are not reconciled against EggCount; that
// consistency is the caller's responsibility. EggCount is a pointer so a
// zero-egg day binds as present rather than missing.
type CreateProductionRecordRequest struct {
	Date     *time.Time `json:"date"`
	EggCount *int       `json:"eggCount" binding:"required,gte=0"`
	GradeA   *int       `json:"gradeA"`
	GradeB   *int       `json:"gradeB"`
	Broken   *int       `json:"broken"`
	Notes    *string    `json:"notes"`
	BatchID  *string    `json:"batchId"`
}

// UpdateProductionRecordRequest is a partial update; nil fields are left as is.
type UpdateProductionRecordRequest struct {
	Date     *time.Time `json:"date"`
	EggCount *int       `json:"eggCount"`
	GradeA   *int       `json:"gradeA"`
	GradeB   *int       `json:"gradeB"`
	Broken   *int       `json:"broken"`
	Notes    *string    `json:"notes"`
	BatchID  *string    `json:"batchId"`
}

// ProductionService owns production record operations and the windowed summary.
type ProductionService interface {
	Create(req CreateProductionRecordRequest) (*models.ProductionRecord, error)
	List(filter models.ProductionFilter) ([]models.ProductionRecord, error)
	GetByID(id int64) (*models.ProductionRecord, error)
	Update(id int64, req UpdateProductionRecordRequest) (*models.ProductionRecord, error)
	Delete(id int64) error
	Summary(days int) (*models.ProductionSummary, error)
}

type productionService struct {
	productionRepo repositories.ProductionRepository
	db             *sql.DB
}

// NewProductionService creates a new instance of ProductionService.
func NewProductionService(repo repositories.ProductionRepository, db *sql.DB) ProductionService {
	return &productionService{productionRepo: repo, db: db}
}

func (s *productionService) Create(req CreateProductionRecordRequest) (*models.ProductionRecord, error) {
	if req.EggCount == nil {
		return nil, fmt.Errorf("%w: egg count is required", ErrValidation)
	}
	if *req.EggCount < 0 {
		return nil, fmt.Errorf("%w: egg count cannot be negative", ErrValidation)
	}

	record := &models.ProductionRecord{
		Date:     time.Now(),
		EggCount: *req.EggCount,
		GradeA:   req.GradeA,
		GradeB:   req.GradeB,
		Broken:   req.Broken,
		Notes:    req.Notes,
		BatchID:  req.BatchID,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}

	if err := s.productionRepo.Create(s.db, record); err != nil {
		return nil, fmt.Errorf("failed to create production record: %w", err)
	}
	return record, nil
}

func (s *productionService) List(filter models.ProductionFilter) ([]models.ProductionRecord, error) {
	records, err := s.productionRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list production records: %w", err)
	}
	return records, nil
}

func (s *productionService) GetByID(id int64) (*models.ProductionRecord, error) {
	record, err := s.productionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get production record: %w", err)
	}
	return record, nil
}

func (s *productionService) Update(id int64, req UpdateProductionRecordRequest) (*models.ProductionRecord, error) {
	record, err := s.productionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to find production record for update: %w", err)
	}

	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.EggCount != nil {
		if *req.EggCount < 0 {
			return nil, fmt.Errorf("%w: egg count cannot be negative", ErrValidation)
		}
		record.EggCount = *req.EggCount
	}
	if req.GradeA != nil {
		record.GradeA = req.GradeA
	}
	if req.GradeB != nil {
		record.GradeB = req.GradeB
	}
	if req.Broken != nil {
		record.Broken = req.Broken
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	if req.BatchID != nil {
		record.BatchID = req.BatchID
	}

	if err := s.productionRepo.Update(s.db, record); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to update production record: %w", err)
	}
	return record, nil
}

func (s *productionService) Delete(id int64) error {
	if err := s.productionRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete production record: %w", err)
	}
	return nil
}

// Summary aggregates records whose date falls inside the trailing window.
// Non-positive day counts fall back to the default window.
func (s *productionService) Summary(days int) (*models.ProductionSummary, error) {
	if days <= 0 {
		days = DefaultProductionWindowDays
	}
	startDate := time.Now().AddDate(0, 0, -days)
	records, err := s.productionRepo.List(models.ProductionFilter{StartDate: &startDate})
	if err != nil {
		return nil, fmt.Errorf("failed to load records for summary: %w", err)
	}
	summary := computeProductionSummary(records)
	return &summary, nil
}

func computeProductionSummary(records []models.ProductionRecord) models.ProductionSummary {
	var summary models.ProductionSummary
	if len(records) == 0 {
		return summary
	}

	var totalGradeA, totalGradeB, totalBroken int
	days := map[string]bool{}
	for _, record := range records {
		summary.TotalEggs += record.EggCount
		if record.GradeA != nil {
			totalGradeA += *record.GradeA
		}
		if record.GradeB != nil {
			totalGradeB += *record.GradeB
		}
		if record.Broken != nil {
			totalBroken += *record.Broken
		}
		// Distinct by calendar day, not by record count.
		days[record.Date.Format("2006-01-02")] = true
	}

	if summary.TotalEggs > 0 {
		summary.GradeAPercentage = roundPercent(totalGradeA, summary.TotalEggs)
		summary.GradeBPercentage = roundPercent(totalGradeB, summary.TotalEggs)
		summary.BrokenPercentage = roundPercent(totalBroken, summary.TotalEggs)
	}
	if len(days) > 0 {
		summary.DailyAverage = int(math.Round(float64(summary.TotalEggs) / float64(len(days))))
	}
	return summary
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

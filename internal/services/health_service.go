package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

var ErrHealthRecordNotFound = errors.New("health record not found")

const maxCommonSymptoms = 5

// CreateHealthRecordRequest carries a new observation. MortalityCount
// defaults to zero when omitted.
type CreateHealthRecordRequest struct {
	Date           *time.Time `json:"date"`
	BatchID        string     `json:"batchId" binding:"required"`
	MortalityCount *int       `json:"mortalityCount"`
	Symptoms       []string   `json:"symptoms"`
	Diagnosis      *string    `json:"diagnosis"`
	Treatment      *string    `json:"treatment"`
	Notes          *string    `json:"notes"`
}

// UpdateHealthRecordRequest is a partial update; nil fields are left as is.
type UpdateHealthRecordRequest struct {
	Date           *time.Time `json:"date"`
	BatchID        *string    `json:"batchId"`
	MortalityCount *int       `json:"mortalityCount"`
	Symptoms       []string   `json:"symptoms"`
	Diagnosis      *string    `json:"diagnosis"`
	Treatment      *string    `json:"treatment"`
	Notes          *string    `json:"notes"`
}

// HealthService owns health record operations and the flock-wide summary.
type HealthService interface {
	Create(req CreateHealthRecordRequest) (*models.HealthRecord, error)
	List(filter models.HealthFilter) ([]models.HealthRecord, error)
	GetByID(id int64) (*models.HealthRecord, error)
	Update(id int64, req UpdateHealthRecordRequest) (*models.HealthRecord, error)
	Delete(id int64) error
	Summary() (*models.HealthSummary, error)
}

type healthService struct {
	healthRepo  repositories.HealthRepository
	chickenRepo repositories.ChickenRepository
	db          *sql.DB
}

// NewHealthService creates a new instance of HealthService.
func NewHealthService(healthRepo repositories.HealthRepository, chickenRepo repositories.ChickenRepository, db *sql.DB) HealthService {
	return &healthService{healthRepo: healthRepo, chickenRepo: chickenRepo, db: db}
}

func (s *healthService) Create(req CreateHealthRecordRequest) (*models.HealthRecord, error) {
	if strings.TrimSpace(req.BatchID) == "" {
		return nil, fmt.Errorf("%w: batch id cannot be empty", ErrValidation)
	}
	if req.MortalityCount != nil && *req.MortalityCount < 0 {
		return nil, fmt.Errorf("%w: mortality count cannot be negative", ErrValidation)
	}

	record := &models.HealthRecord{
		Date:           time.Now(),
		BatchID:        req.BatchID,
		MortalityCount: req.MortalityCount,
		Symptoms:       req.Symptoms,
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
		Notes:          req.Notes,
	}
	if req.Date != nil {
		record.Date = *req.Date
	}
	if record.MortalityCount == nil {
		zero := 0
		record.MortalityCount = &zero
	}

	if err := s.healthRepo.Create(s.db, record); err != nil {
		return nil, fmt.Errorf("failed to create health record: %w", err)
	}
	return record, nil
}

func (s *healthService) List(filter models.HealthFilter) ([]models.HealthRecord, error) {
	records, err := s.healthRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	return records, nil
}

func (s *healthService) GetByID(id int64) (*models.HealthRecord, error) {
	record, err := s.healthRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrHealthRecordNotFound
		}
		return nil, fmt.Errorf("failed to get health record: %w", err)
	}
	return record, nil
}

func (s *healthService) Update(id int64, req UpdateHealthRecordRequest) (*models.HealthRecord, error) {
	record, err := s.healthRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrHealthRecordNotFound
		}
		return nil, fmt.Errorf("failed to find health record for update: %w", err)
	}

	if req.Date != nil {
		record.Date = *req.Date
	}
	if req.BatchID != nil {
		if strings.TrimSpace(*req.BatchID) == "" {
			return nil, fmt.Errorf("%w: batch id cannot be empty", ErrValidation)
		}
		record.BatchID = *req.BatchID
	}
	if req.MortalityCount != nil {
		if *req.MortalityCount < 0 {
			return nil, fmt.Errorf("%w: mortality count cannot be negative", ErrValidation)
		}
		record.MortalityCount = req.MortalityCount
	}
	if req.Symptoms != nil {
		record.Symptoms = req.Symptoms
	}
	if req.Diagnosis != nil {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != nil {
		record.Treatment = req.Treatment
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	if err := s.healthRepo.Update(s.db, record); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrHealthRecordNotFound
		}
		return nil, fmt.Errorf("failed to update health record: %w", err)
	}
	return record, nil
}

func (s *healthService) Delete(id int64) error {
	if err := s.healthRepo.Delete(s.db, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrHealthRecordNotFound
		}
		return fmt.Errorf("failed to delete health record: %w", err)
	}
	return nil
}

// Summary aggregates every health record against every batch, regardless of
// batch status.
func (s *healthService) Summary() (*models.HealthSummary, error) {
	records, err := s.healthRepo.List(models.HealthFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load health records for summary: %w", err)
	}
	batches, err := s.chickenRepo.List(models.ChickenBatchFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load chicken batches for summary: %w", err)
	}
	summary := computeHealthSummary(records, batches)
	return &summary, nil
}

func computeHealthSummary(records []models.HealthRecord, batches []models.ChickenBatch) models.HealthSummary {
	summary := models.HealthSummary{CommonSymptoms: []string{}}

	var totalChickens int
	for _, batch := range batches {
		totalChickens += batch.Quantity
	}

	counts := map[string]int{}
	var order []string
	for _, record := range records {
		if record.MortalityCount != nil {
			summary.TotalMortality += *record.MortalityCount
		}
		for _, symptom := range record.Symptoms {
			if counts[symptom] == 0 {
				order = append(order, symptom)
			}
			counts[symptom]++
		}
	}

	// With no chickens on record there is nothing unhealthy to report.
	if totalChickens > 0 {
		ratio := float64(totalChickens-summary.TotalMortality) / float64(totalChickens)
		summary.HealthyPercentage = int(math.Round(ratio * 100))
	} else {
		summary.HealthyPercentage = 100
	}

	// Ties keep first-encounter order; sort.SliceStable preserves it.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxCommonSymptoms {
		order = order[:maxCommonSymptoms]
	}
	summary.CommonSymptoms = append(summary.CommonSymptoms, order...)
	return summary
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

type fakeProductionRepo struct {
	records []models.ProductionRecord
	nextID  int64
}

func (f *fakeProductionRepo) Create(_ repositories.SQLExecutor, record *models.ProductionRecord) error {
	f.nextID++
	record.ID = f.nextID
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeProductionRepo) List(filter models.ProductionFilter) ([]models.ProductionRecord, error) {
	out := []models.ProductionRecord{}
	for _, r := range f.records {
		if filter.StartDate != nil && r.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && r.Date.After(*filter.EndDate) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeProductionRepo) GetByID(id int64) (*models.ProductionRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeProductionRepo) Update(_ repositories.SQLExecutor, record *models.ProductionRecord) error {
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = *record
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeProductionRepo) Delete(_ repositories.SQLExecutor, id int64) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func intp(v int) *int { return &v }

func TestProductionSummaryEmptyWindow(t *testing.T) {
	summary := computeProductionSummary(nil)
	if summary.TotalEggs != 0 || summary.DailyAverage != 0 || summary.GradeAPercentage != 0 {
		t.Errorf("empty window summary should be all zero, got %+v", summary)
	}
}

func TestProductionSummaryDistinctDays(t *testing.T) {
	day := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	records := []models.ProductionRecord{
		{Date: day, EggCount: 30},
		{Date: day.Add(6 * time.Hour), EggCount: 30},
		{Date: day.AddDate(0, 0, 1), EggCount: 30},
	}

	summary := computeProductionSummary(records)
	if summary.TotalEggs != 90 {
		t.Errorf("TotalEggs = %d, want 90", summary.TotalEggs)
	}
	// Three records but only two calendar days.
	if summary.DailyAverage != 45 {
		t.Errorf("DailyAverage = %d, want 45", summary.DailyAverage)
	}
}

func TestProductionSummaryPercentagesRound(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []models.ProductionRecord{
		{Date: day, EggCount: 3, GradeA: intp(1), GradeB: intp(1), Broken: intp(1)},
	}

	summary := computeProductionSummary(records)
	if summary.GradeAPercentage != 33 {
		t.Errorf("GradeAPercentage = %d, want 33", summary.GradeAPercentage)
	}
	if summary.BrokenPercentage != 33 {
		t.Errorf("BrokenPercentage = %d, want 33", summary.BrokenPercentage)
	}
}

func TestProductionSummaryNilGradesCountZero(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	records := []models.ProductionRecord{
		{Date: day, EggCount: 50},
		{Date: day, EggCount: 50, GradeA: intp(50)},
	}

	summary := computeProductionSummary(records)
	if summary.GradeAPercentage != 50 {
		t.Errorf("GradeAPercentage = %d, want 50", summary.GradeAPercentage)
	}
	if summary.GradeBPercentage != 0 {
		t.Errorf("GradeBPercentage = %d, want 0", summary.GradeBPercentage)
	}
}

func TestProductionCreateZeroEggDay(t *testing.T) {
	// A day with no eggs is a legitimate record, not a missing count.
	repo := &fakeProductionRepo{}
	svc := NewProductionService(repo, nil)

	record, err := svc.Create(CreateProductionRecordRequest{EggCount: intp(0)})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if record.EggCount != 0 {
		t.Errorf("EggCount = %d, want 0", record.EggCount)
	}
}

func TestProductionCreateMissingEggCount(t *testing.T) {
	svc := NewProductionService(&fakeProductionRepo{}, nil)
	_, err := svc.Create(CreateProductionRecordRequest{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProductionSummaryWindowExcludesOldRecords(t *testing.T) {
	repo := &fakeProductionRepo{}
	svc := NewProductionService(repo, nil)

	recent := time.Now().AddDate(0, 0, -2)
	old := time.Now().AddDate(0, 0, -60)
	if _, err := svc.Create(CreateProductionRecordRequest{Date: &recent, EggCount: intp(40)}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(CreateProductionRecordRequest{Date: &old, EggCount: intp(500)}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary, err := svc.Summary(0)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.TotalEggs != 40 {
		t.Errorf("TotalEggs = %d, want 40 (default window should exclude the 60-day-old record)", summary.TotalEggs)
	}
}

package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

type fakeHealthRepo struct {
	records []models.HealthRecord
	nextID  int64
}

func (f *fakeHealthRepo) Create(_ repositories.SQLExecutor, record *models.HealthRecord) error {
	f.nextID++
	record.ID = f.nextID
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeHealthRepo) List(filter models.HealthFilter) ([]models.HealthRecord, error) {
	out := []models.HealthRecord{}
	for _, r := range f.records {
		if filter.BatchID != nil && r.BatchID != *filter.BatchID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeHealthRepo) GetByID(id int64) (*models.HealthRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			r := f.records[i]
			return &r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeHealthRepo) Update(_ repositories.SQLExecutor, record *models.HealthRecord) error {
	for i := range f.records {
		if f.records[i].ID == record.ID {
			f.records[i] = *record
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeHealthRepo) Delete(_ repositories.SQLExecutor, id int64) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeChickenRepo struct {
	batches []models.ChickenBatch
	nextID  int64
}

func (f *fakeChickenRepo) Create(_ repositories.SQLExecutor, batch *models.ChickenBatch) error {
	for _, b := range f.batches {
		if b.BatchID == batch.BatchID {
			return repositories.ErrDuplicateKey
		}
	}
	f.nextID++
	batch.ID = f.nextID
	f.batches = append(f.batches, *batch)
	return nil
}

func (f *fakeChickenRepo) List(filter models.ChickenBatchFilter) ([]models.ChickenBatch, error) {
	out := []models.ChickenBatch{}
	for _, b := range f.batches {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Breed != nil && b.Breed != *filter.Breed {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeChickenRepo) GetByID(id int64) (*models.ChickenBatch, error) {
	for i := range f.batches {
		if f.batches[i].ID == id {
			b := f.batches[i]
			return &b, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeChickenRepo) GetByBatchID(batchID string) (*models.ChickenBatch, error) {
	for i := range f.batches {
		if f.batches[i].BatchID == batchID {
			b := f.batches[i]
			return &b, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeChickenRepo) Update(_ repositories.SQLExecutor, batch *models.ChickenBatch) error {
	for i := range f.batches {
		if i != int(batch.ID-1) && f.batches[i].BatchID == batch.BatchID {
			return repositories.ErrDuplicateKey
		}
	}
	for i := range f.batches {
		if f.batches[i].ID == batch.ID {
			f.batches[i] = *batch
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeChickenRepo) Delete(_ repositories.SQLExecutor, id int64) error {
	for i := range f.batches {
		if f.batches[i].ID == id {
			f.batches = append(f.batches[:i], f.batches[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func healthRecord(batchID string, mortality *int, symptoms ...string) models.HealthRecord {
	return models.HealthRecord{Date: time.Now(), BatchID: batchID, MortalityCount: mortality, Symptoms: symptoms}
}

func TestHealthSummaryZeroBatchesIsFullyHealthy(t *testing.T) {
	summary := computeHealthSummary(nil, nil)
	if summary.HealthyPercentage != 100 {
		t.Errorf("HealthyPercentage = %d, want 100 with no batches", summary.HealthyPercentage)
	}
	if summary.TotalMortality != 0 {
		t.Errorf("TotalMortality = %d, want 0", summary.TotalMortality)
	}
	if len(summary.CommonSymptoms) != 0 {
		t.Errorf("CommonSymptoms = %v, want empty", summary.CommonSymptoms)
	}
}

func TestHealthSummaryMortalityAndPercentage(t *testing.T) {
	batches := []models.ChickenBatch{
		{ID: 1, BatchID: "B-1", Quantity: 80},
		{ID: 2, BatchID: "B-2", Quantity: 20},
	}
	records := []models.HealthRecord{
		healthRecord("B-1", intp(3)),
		healthRecord("B-2", intp(2)),
		healthRecord("B-1", nil), // nil mortality counts as zero
	}

	summary := computeHealthSummary(records, batches)
	if summary.TotalMortality != 5 {
		t.Errorf("TotalMortality = %d, want 5", summary.TotalMortality)
	}
	if summary.HealthyPercentage != 95 {
		t.Errorf("HealthyPercentage = %d, want 95", summary.HealthyPercentage)
	}
}

func TestHealthSummaryTopSymptomsOrderAndCap(t *testing.T) {
	records := []models.HealthRecord{
		healthRecord("B-1", nil, "lethargy", "coughing"),
		healthRecord("B-1", nil, "coughing", "sneezing"),
		healthRecord("B-1", nil, "coughing", "pale comb", "ruffled feathers", "diarrhea"),
	}

	summary := computeHealthSummary(records, nil)
	want := []string{"coughing", "lethargy", "sneezing", "pale comb", "ruffled feathers"}
	if !reflect.DeepEqual(summary.CommonSymptoms, want) {
		t.Errorf("CommonSymptoms = %v, want %v", summary.CommonSymptoms, want)
	}
	if len(summary.CommonSymptoms) > 5 {
		t.Errorf("CommonSymptoms should be capped at 5, got %d", len(summary.CommonSymptoms))
	}
}

func TestHealthCreateDefaultsMortality(t *testing.T) {
	repo := &fakeHealthRepo{}
	svc := NewHealthService(repo, &fakeChickenRepo{}, nil)

	record, err := svc.Create(CreateHealthRecordRequest{BatchID: "B-1"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if record.MortalityCount == nil || *record.MortalityCount != 0 {
		t.Errorf("MortalityCount = %v, want pointer to 0", record.MortalityCount)
	}
}

func TestHealthRecordAllowsUnknownBatch(t *testing.T) {
	// Batch references are soft; a record may cite a batch that was never
	// registered or was deleted.
	svc := NewHealthService(&fakeHealthRepo{}, &fakeChickenRepo{}, nil)
	if _, err := svc.Create(CreateHealthRecordRequest{BatchID: "never-registered"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestHealthGetByIDNotFound(t *testing.T) {
	svc := NewHealthService(&fakeHealthRepo{}, &fakeChickenRepo{}, nil)
	_, err := svc.GetByID(7)
	if !errors.Is(err, ErrHealthRecordNotFound) {
		t.Fatalf("expected ErrHealthRecordNotFound, got %v", err)
	}
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
)

func TestChickenCreateDuplicateBatchID(t *testing.T) {
	repo := &fakeChickenRepo{}
	svc := NewChickenService(repo, nil)

	acq := time.Now()
	req := CreateChickenBatchRequest{BatchID: "B-2026-01", Breed: "Leghorn", Quantity: 50, AcquisitionDate: &acq}
	if _, err := svc.Create(req); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(req)
	if !errors.Is(err, ErrBatchIDExists) {
		t.Fatalf("expected ErrBatchIDExists, got %v", err)
	}
}

func TestChickenCreateDefaultsStatusActive(t *testing.T) {
	svc := NewChickenService(&fakeChickenRepo{}, nil)

	batch, err := svc.Create(CreateChickenBatchRequest{BatchID: "B-1", Breed: "Sussex", Quantity: 10})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if batch.Status != models.BatchStatusActive {
		t.Errorf("Status = %q, want %q", batch.Status, models.BatchStatusActive)
	}
}

func TestChickenCreateRejectsBadStatus(t *testing.T) {
	svc := NewChickenService(&fakeChickenRepo{}, nil)

	_, err := svc.Create(CreateChickenBatchRequest{BatchID: "B-1", Breed: "Sussex", Quantity: 10, Status: "retired"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestChickenUpdateStatusTransitionIsFree(t *testing.T) {
	// Any status can move to any other; there is no lifecycle ordering.
	svc := NewChickenService(&fakeChickenRepo{}, nil)

	batch, err := svc.Create(CreateChickenBatchRequest{BatchID: "B-1", Breed: "Sussex", Quantity: 10, Status: models.BatchStatusSold})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	active := models.BatchStatusActive
	updated, err := svc.Update(batch.ID, UpdateChickenBatchRequest{Status: &active})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Status != models.BatchStatusActive {
		t.Errorf("Status = %q, want %q", updated.Status, models.BatchStatusActive)
	}
}

func TestChickenGetByBatchID(t *testing.T) {
	svc := NewChickenService(&fakeChickenRepo{}, nil)

	if _, err := svc.Create(CreateChickenBatchRequest{BatchID: "B-7", Breed: "Orpington", Quantity: 25}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	batch, err := svc.GetByBatchID("B-7")
	if err != nil {
		t.Fatalf("GetByBatchID: %v", err)
	}
	if batch.Breed != "Orpington" {
		t.Errorf("Breed = %q, want Orpington", batch.Breed)
	}

	if _, err := svc.GetByBatchID("B-404"); !errors.Is(err, ErrBatchNotFound) {
		t.Fatalf("expected ErrBatchNotFound, got %v", err)
	}
}

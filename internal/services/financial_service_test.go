package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

type fakeFinancialRepo struct {
	entries []models.FinancialEntry
	nextID  int64
}

func (f *fakeFinancialRepo) Create(_ repositories.SQLExecutor, entry *models.FinancialEntry) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeFinancialRepo) List(filter models.FinancialFilter) ([]models.FinancialEntry, error) {
	out := []models.FinancialEntry{}
	for _, e := range f.entries {
		if filter.Type != nil && e.Type != *filter.Type {
			continue
		}
		if filter.Category != nil && e.Category != *filter.Category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeFinancialRepo) GetByID(id int64) (*models.FinancialEntry, error) {
	for i := range f.entries {
		if f.entries[i].ID == id {
			e := f.entries[i]
			return &e, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeFinancialRepo) Update(_ repositories.SQLExecutor, entry *models.FinancialEntry) error {
	for i := range f.entries {
		if f.entries[i].ID == entry.ID {
			f.entries[i] = *entry
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeFinancialRepo) Delete(_ repositories.SQLExecutor, id int64) error {
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func entry(entryType, category string, amount float64) models.FinancialEntry {
	return models.FinancialEntry{Date: time.Now(), Amount: amount, Type: entryType, Category: category}
}

func TestFinancialSummaryReconciles(t *testing.T) {
	entries := []models.FinancialEntry{
		entry(models.FinancialTypeIncome, "egg-sales", 5000),
		entry(models.FinancialTypeIncome, "egg-sales", 3500),
		entry(models.FinancialTypeExpense, "feed", 6000),
		entry(models.FinancialTypeExpense, "medicine", 3000),
		entry(models.FinancialTypeInvestment, "coop-expansion", 24500),
		entry(models.FinancialTypeCapital, "initial", 100000),
	}

	summary := computeFinancialSummary(entries)

	if summary.TotalIncome != 8500 {
		t.Errorf("TotalIncome = %v, want 8500", summary.TotalIncome)
	}
	if summary.TotalExpenses != 9000 {
		t.Errorf("TotalExpenses = %v, want 9000", summary.TotalExpenses)
	}
	if summary.TotalInvestments != 24500 {
		t.Errorf("TotalInvestments = %v, want 24500", summary.TotalInvestments)
	}
	if summary.TotalCapital != 100000 {
		t.Errorf("TotalCapital = %v, want 100000", summary.TotalCapital)
	}
	if summary.ExpensesByCategory["feed"] != 6000 {
		t.Errorf("ExpensesByCategory[feed] = %v, want 6000", summary.ExpensesByCategory["feed"])
	}
	if summary.ExpensesByCategory["medicine"] != 3000 {
		t.Errorf("ExpensesByCategory[medicine] = %v, want 3000", summary.ExpensesByCategory["medicine"])
	}
}

func TestFinancialSummaryEmpty(t *testing.T) {
	summary := computeFinancialSummary(nil)
	if summary.TotalIncome != 0 || summary.TotalExpenses != 0 || len(summary.ExpensesByCategory) != 0 {
		t.Errorf("empty ledger summary should be all zero, got %+v", summary)
	}
}

func TestFinancialCreateRejectsBadType(t *testing.T) {
	svc := NewFinancialService(&fakeFinancialRepo{}, nil)
	_, err := svc.Create(CreateFinancialEntryRequest{Amount: 10, Type: "donation", Category: "misc"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFinancialCreateDefaultsDate(t *testing.T) {
	repo := &fakeFinancialRepo{}
	svc := NewFinancialService(repo, nil)

	created, err := svc.Create(CreateFinancialEntryRequest{Amount: 10, Type: models.FinancialTypeIncome, Category: "egg-sales"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Date.IsZero() {
		t.Error("expected date to default to now")
	}
	if created.ID == 0 {
		t.Error("expected an assigned id")
	}
}

func TestFinancialUpdateMergesFields(t *testing.T) {
	repo := &fakeFinancialRepo{}
	svc := NewFinancialService(repo, nil)

	created, err := svc.Create(CreateFinancialEntryRequest{Amount: 10, Type: models.FinancialTypeIncome, Category: "egg-sales"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	newAmount := 25.0
	updated, err := svc.Update(created.ID, UpdateFinancialEntryRequest{Amount: &newAmount})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Amount != 25 {
		t.Errorf("Amount = %v, want 25", updated.Amount)
	}
	if updated.Type != models.FinancialTypeIncome || updated.Category != "egg-sales" {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestFinancialGetByIDNotFound(t *testing.T) {
	svc := NewFinancialService(&fakeFinancialRepo{}, nil)
	_, err := svc.GetByID(99)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

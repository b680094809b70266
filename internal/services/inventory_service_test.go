package services

import (
	"errors"
	"testing"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
)

type fakeInventoryRepo struct {
	items  []models.InventoryItem
	nextID int64
}

func (f *fakeInventoryRepo) Create(_ repositories.SQLExecutor, item *models.InventoryItem) error {
	f.nextID++
	item.ID = f.nextID
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeInventoryRepo) List(filter models.InventoryFilter) ([]models.InventoryItem, error) {
	out := []models.InventoryItem{}
	for _, item := range f.items {
		if filter.Category != nil && item.Category != *filter.Category {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeInventoryRepo) GetByID(id int64) (*models.InventoryItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeInventoryRepo) Update(_ repositories.SQLExecutor, item *models.InventoryItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeInventoryRepo) Delete(_ repositories.SQLExecutor, id int64) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (f *fakeInventoryRepo) AdjustQuantity(_ repositories.SQLExecutor, id int64, adjustment float64) (*models.InventoryItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			if f.items[i].Quantity+adjustment < 0 {
				return nil, repositories.ErrQuantityFloor
			}
			f.items[i].Quantity += adjustment
			f.items[i].LastUpdated = time.Now()
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func floatp(v float64) *float64 { return &v }

func newInventoryItem(t *testing.T, svc InventoryService, name string, quantity float64, reorder *float64) *models.InventoryItem {
	t.Helper()
	item, err := svc.Create(CreateInventoryItemRequest{Name: name, Category: "feed", Quantity: &quantity, Unit: "kg", ReorderLevel: reorder})
	if err != nil {
		t.Fatalf("Create %s: %v", name, err)
	}
	return item
}

func TestInventoryAdjustBelowZeroFails(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	item := newInventoryItem(t, svc, "layer feed", 10, nil)

	_, err := svc.Adjust(item.ID, -15)
	if !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}

	// The failed adjustment must leave the stored quantity untouched.
	got, err := svc.GetByID(item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Quantity != 10 {
		t.Errorf("Quantity = %v, want 10 after failed adjustment", got.Quantity)
	}
}

func TestInventoryAdjustToExactlyZero(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	item := newInventoryItem(t, svc, "layer feed", 10, nil)

	adjusted, err := svc.Adjust(item.ID, -10)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adjusted.Quantity != 0 {
		t.Errorf("Quantity = %v, want 0", adjusted.Quantity)
	}
}

func TestInventoryAdjustFromZeroFails(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	item := newInventoryItem(t, svc, "oyster shell", 0, nil)

	if _, err := svc.Adjust(item.ID, -1); !errors.Is(err, ErrInsufficientQuantity) {
		t.Fatalf("expected ErrInsufficientQuantity, got %v", err)
	}
}

func TestInventoryAdjustZeroDelta(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	item := newInventoryItem(t, svc, "layer feed", 10, nil)

	adjusted, err := svc.Adjust(item.ID, 0)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if adjusted.Quantity != 10 {
		t.Errorf("Quantity = %v, want 10 unchanged", adjusted.Quantity)
	}
}

func TestInventoryAdjustMissingItem(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	if _, err := svc.Adjust(99, 5); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestInventoryListBelowReorderLevel(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	low := newInventoryItem(t, svc, "layer feed", 5, floatp(10))
	newInventoryItem(t, svc, "scratch grain", 50, floatp(10))
	newInventoryItem(t, svc, "no threshold", 1, nil)
	atLevel := newInventoryItem(t, svc, "grit", 10, floatp(10))

	items, err := svc.List(models.InventoryFilter{BelowReorderLevel: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("List below reorder = %d items, want 2", len(items))
	}
	ids := map[int64]bool{items[0].ID: true, items[1].ID: true}
	if !ids[low.ID] || !ids[atLevel.ID] {
		t.Errorf("expected the low and at-level items, got %+v", items)
	}
}

func TestInventoryCreateStampsLastUpdated(t *testing.T) {
	svc := NewInventoryService(&fakeInventoryRepo{}, nil)
	item := newInventoryItem(t, svc, "layer feed", 5, nil)
	if item.LastUpdated.IsZero() {
		t.Error("LastUpdated should be stamped on create")
	}
}

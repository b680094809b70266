package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
)

type stubInventoryService struct {
	items map[int64]*models.InventoryItem
}

func (s *stubInventoryService) Create(req services.CreateInventoryItemRequest) (*models.InventoryItem, error) {
	item := &models.InventoryItem{ID: 1, Name: req.Name, Category: req.Category, Unit: req.Unit, LastUpdated: time.Now()}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	s.items[item.ID] = item
	return item, nil
}

func (s *stubInventoryService) List(models.InventoryFilter) ([]models.InventoryItem, error) {
	out := []models.InventoryItem{}
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out, nil
}

func (s *stubInventoryService) GetByID(id int64) (*models.InventoryItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, services.ErrItemNotFound
	}
	return item, nil
}

func (s *stubInventoryService) Update(id int64, _ services.UpdateInventoryItemRequest) (*models.InventoryItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, services.ErrItemNotFound
	}
	return item, nil
}

func (s *stubInventoryService) Delete(id int64) error {
	if _, ok := s.items[id]; !ok {
		return services.ErrItemNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *stubInventoryService) Adjust(id int64, adjustment float64) (*models.InventoryItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, services.ErrItemNotFound
	}
	if item.Quantity+adjustment < 0 {
		return nil, services.ErrInsufficientQuantity
	}
	item.Quantity += adjustment
	return item, nil
}

func setupInventoryRouter(svc services.InventoryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewInventoryHandler(svc)
	engine.POST("/inventory/:id/adjust", handler.AdjustInventoryQuantity)
	engine.GET("/inventory/:id", handler.GetInventoryItemByID)
	return engine
}

func adjustRequest(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

func TestAdjustInventoryConflictBelowZero(t *testing.T) {
	svc := &stubInventoryService{items: map[int64]*models.InventoryItem{
		3: {ID: 3, Name: "layer feed", Quantity: 10},
	}}
	engine := setupInventoryRouter(svc)

	w := adjustRequest(t, engine, "/inventory/3/adjust", `{"adjustment":-15}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409 when adjustment would go below zero", w.Code)
	}
	if svc.items[3].Quantity != 10 {
		t.Errorf("quantity changed to %v after rejected adjustment", svc.items[3].Quantity)
	}
}

func TestAdjustInventoryApplied(t *testing.T) {
	svc := &stubInventoryService{items: map[int64]*models.InventoryItem{
		3: {ID: 3, Name: "layer feed", Quantity: 10},
	}}
	engine := setupInventoryRouter(svc)

	w := adjustRequest(t, engine, "/inventory/3/adjust", `{"adjustment":-4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.items[3].Quantity != 6 {
		t.Errorf("quantity = %v, want 6", svc.items[3].Quantity)
	}
}

func TestAdjustInventoryZeroDelta(t *testing.T) {
	// A zero delta is a no-op correction, not a missing field.
	svc := &stubInventoryService{items: map[int64]*models.InventoryItem{
		3: {ID: 3, Name: "layer feed", Quantity: 10},
	}}
	engine := setupInventoryRouter(svc)

	w := adjustRequest(t, engine, "/inventory/3/adjust", `{"adjustment":0}`)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for a zero adjustment (body: %s)", w.Code, w.Body.String())
	}
	if svc.items[3].Quantity != 10 {
		t.Errorf("quantity = %v, want 10 unchanged", svc.items[3].Quantity)
	}
}

func TestAdjustInventoryMissingAdjustment(t *testing.T) {
	svc := &stubInventoryService{items: map[int64]*models.InventoryItem{
		3: {ID: 3, Name: "layer feed", Quantity: 10},
	}}
	engine := setupInventoryRouter(svc)

	w := adjustRequest(t, engine, "/inventory/3/adjust", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when adjustment is absent", w.Code)
	}
}

func TestAdjustInventoryMissingItem(t *testing.T) {
	engine := setupInventoryRouter(&stubInventoryService{items: map[int64]*models.InventoryItem{}})

	w := adjustRequest(t, engine, "/inventory/9/adjust", `{"adjustment":5}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAdjustInventoryMalformedBody(t *testing.T) {
	svc := &stubInventoryService{items: map[int64]*models.InventoryItem{
		3: {ID: 3, Name: "layer feed", Quantity: 10},
	}}
	engine := setupInventoryRouter(svc)

	w := adjustRequest(t, engine, "/inventory/3/adjust", `{"adjustment":"lots"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a non-numeric adjustment", w.Code)
	}
}

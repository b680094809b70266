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

type stubProductionService struct {
	records map[int64]*models.ProductionRecord
	nextID  int64
}

func (s *stubProductionService) Create(req services.CreateProductionRecordRequest) (*models.ProductionRecord, error) {
	record := &models.ProductionRecord{Date: time.Now()}
	if req.EggCount != nil {
		record.EggCount = *req.EggCount
	}
	s.nextID++
	record.ID = s.nextID
	s.records[record.ID] = record
	return record, nil
}

func (s *stubProductionService) List(models.ProductionFilter) ([]models.ProductionRecord, error) {
	out := []models.ProductionRecord{}
	for _, record := range s.records {
		out = append(out, *record)
	}
	return out, nil
}

func (s *stubProductionService) GetByID(id int64) (*models.ProductionRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, services.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubProductionService) Update(id int64, _ services.UpdateProductionRecordRequest) (*models.ProductionRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, services.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubProductionService) Delete(id int64) error {
	if _, ok := s.records[id]; !ok {
		return services.ErrRecordNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *stubProductionService) Summary(int) (*models.ProductionSummary, error) {
	return &models.ProductionSummary{}, nil
}

func setupProductionRouter(svc services.ProductionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewProductionHandler(svc)
	engine.POST("/production", handler.CreateProductionRecord)
	engine.GET("/production/summary", handler.GetProductionSummary)
	return engine
}

func TestCreateProductionRecordZeroEggs(t *testing.T) {
	// eggCount 0 is a real observation and must bind as present.
	engine := setupProductionRouter(&stubProductionService{records: map[int64]*models.ProductionRecord{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/production", strings.NewReader(`{"eggCount":0}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201 for a zero-egg day (body: %s)", w.Code, w.Body.String())
	}
}

func TestCreateProductionRecordMissingEggCount(t *testing.T) {
	engine := setupProductionRouter(&stubProductionService{records: map[int64]*models.ProductionRecord{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/production", strings.NewReader(`{"notes":"no count taken"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when eggCount is absent", w.Code)
	}
}

func TestCreateProductionRecordNegativeEggCount(t *testing.T) {
	engine := setupProductionRouter(&stubProductionService{records: map[int64]*models.ProductionRecord{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/production", strings.NewReader(`{"eggCount":-3}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a negative egg count", w.Code)
	}
}

func TestGetProductionSummaryBadDays(t *testing.T) {
	engine := setupProductionRouter(&stubProductionService{records: map[int64]*models.ProductionRecord{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/production/summary?days=soon", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a non-numeric days value", w.Code)
	}
}

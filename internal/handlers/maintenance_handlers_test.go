package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/models"
	"github.com/mukeshkumar286/chickegg/internal/services"
)

type stubMaintenanceService struct {
	tasks map[int64]*models.MaintenanceTask
}

func (s *stubMaintenanceService) Create(req services.CreateMaintenanceTaskRequest) (*models.MaintenanceTask, error) {
	task := &models.MaintenanceTask{ID: 1, Title: req.Title, Category: req.Category, Priority: models.PriorityMedium}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *stubMaintenanceService) List(models.MaintenanceFilter) ([]models.MaintenanceTask, error) {
	out := []models.MaintenanceTask{}
	for _, task := range s.tasks {
		out = append(out, *task)
	}
	return out, nil
}

func (s *stubMaintenanceService) GetByID(id int64) (*models.MaintenanceTask, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *stubMaintenanceService) Update(id int64, _ services.UpdateMaintenanceTaskRequest) (*models.MaintenanceTask, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, services.ErrTaskNotFound
	}
	return task, nil
}

func (s *stubMaintenanceService) Delete(id int64) error {
	if _, ok := s.tasks[id]; !ok {
		return services.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func (s *stubMaintenanceService) Toggle(id int64) (*models.MaintenanceTask, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, services.ErrTaskNotFound
	}
	task.Completed = !task.Completed
	return task, nil
}

func setupMaintenanceRouter(svc services.MaintenanceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewMaintenanceHandler(svc)
	engine.POST("/maintenance", handler.CreateMaintenanceTask)
	engine.GET("/maintenance/:id", handler.GetMaintenanceTaskByID)
	engine.POST("/maintenance/:id/toggle", handler.ToggleMaintenanceTask)
	return engine
}

func TestGetMaintenanceTaskMalformedID(t *testing.T) {
	engine := setupMaintenanceRouter(&stubMaintenanceService{tasks: map[int64]*models.MaintenanceTask{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/maintenance/abc", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for malformed id", w.Code)
	}
}

func TestGetMaintenanceTaskNotFound(t *testing.T) {
	engine := setupMaintenanceRouter(&stubMaintenanceService{tasks: map[int64]*models.MaintenanceTask{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/maintenance/42", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for missing task", w.Code)
	}
}

func TestToggleMaintenanceTask(t *testing.T) {
	svc := &stubMaintenanceService{tasks: map[int64]*models.MaintenanceTask{
		7: {ID: 7, Title: "Clean coop", Category: "cleaning"},
	}}
	engine := setupMaintenanceRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/maintenance/7/toggle", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"completed":true`) {
		t.Errorf("body = %s, want completed true", w.Body.String())
	}
}

func TestCreateMaintenanceTaskMissingTitle(t *testing.T) {
	engine := setupMaintenanceRouter(&stubMaintenanceService{tasks: map[int64]*models.MaintenanceTask{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/maintenance", strings.NewReader(`{"category":"cleaning"}`))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when title is missing", w.Code)
	}
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mukeshkumar286/chickegg/internal/models"
)

// MaintenanceRepository defines the database operations for maintenance tasks.
type MaintenanceRepository interface {
	Create(executor SQLExecutor, task *models.MaintenanceTask) error
	List(filter models.MaintenanceFilter) ([]models.MaintenanceTask, error)
	GetByID(id int64) (*models.MaintenanceTask, error)
	Update(executor SQLExecutor, task *models.MaintenanceTask) error
	Delete(executor SQLExecutor, id int64) error
	ToggleCompletion(executor SQLExecutor, id int64) (*models.MaintenanceTask, error)
}

type maintenanceRepository struct {
	db *sql.DB
}

// NewMaintenanceRepository creates a new instance of MaintenanceRepository.
func NewMaintenanceRepository(db *sql.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, title, description, due_date, completed, category, priority`

func scanMaintenanceTask(s scanner, task *models.MaintenanceTask) error {
	return s.Scan(
		&task.ID, &task.Title, &task.Description, &task.DueDate,
		&task.Completed, &task.Category, &task.Priority,
	)
}

func (r *maintenanceRepository) Create(executor SQLExecutor, task *models.MaintenanceTask) error {
	query := `INSERT INTO maintenance_tasks (title, description, due_date, completed, category, priority)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	err := executor.QueryRow(query,
		task.Title, task.Description, task.DueDate, task.Completed, task.Category, task.Priority,
	).Scan(&task.ID)
	if err != nil {
		return fmt.Errorf("%w: creating maintenance task: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *maintenanceRepository) List(filter models.MaintenanceFilter) ([]models.MaintenanceTask, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + maintenanceColumns + ` FROM maintenance_tasks`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("completed = $%d", argCount))
		args = append(args, *filter.Completed)
		argCount++
	}
	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filter.Category)
		argCount++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argCount))
		args = append(args, *filter.Priority)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY due_date DESC NULLS LAST, id DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing maintenance tasks: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	tasks := []models.MaintenanceTask{}
	for rows.Next() {
		var task models.MaintenanceTask
		if err := scanMaintenanceTask(rows, &task); err != nil {
			return nil, fmt.Errorf("%w: scanning maintenance task: %v", ErrDatabaseError, err)
		}
		tasks = append(tasks, task)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating maintenance tasks: %v", ErrDatabaseError, err)
	}
	return tasks, nil
}

func (r *maintenanceRepository) GetByID(id int64) (*models.MaintenanceTask, error) {
	task := &models.MaintenanceTask{}
	query := `SELECT ` + maintenanceColumns + ` FROM maintenance_tasks WHERE id = $1`
	err := scanMaintenanceTask(r.db.QueryRow(query, id), task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting maintenance task by ID %d: %v", ErrDatabaseError, id, err)
	}
	return task, nil
}

func (r *maintenanceRepository) Update(executor SQLExecutor, task *models.MaintenanceTask) error {
	query := `UPDATE maintenance_tasks
	          SET title = $1, description = $2, due_date = $3, completed = $4, category = $5, priority = $6
	          WHERE id = $7`
	result, err := executor.Exec(query,
		task.Title, task.Description, task.DueDate, task.Completed, task.Category, task.Priority, task.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating maintenance task ID %d: %v", ErrDatabaseError, task.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM maintenance_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting maintenance task ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleCompletion flips the completed flag in a single statement so two
// concurrent toggles cannot lose an update between a read and a write.
func (r *maintenanceRepository) ToggleCompletion(executor SQLExecutor, id int64) (*models.MaintenanceTask, error) {
	task := &models.MaintenanceTask{}
	query := `UPDATE maintenance_tasks
	          SET completed = NOT completed
	          WHERE id = $1
	          RETURNING ` + maintenanceColumns
	err := scanMaintenanceTask(executor.QueryRow(query, id), task)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: toggling maintenance task ID %d: %v", ErrDatabaseError, id, err)
	}
	return task, nil
}

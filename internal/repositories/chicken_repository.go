package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mukeshkumar286/chickegg/internal/models"

	"github.com/lib/pq"
)

// ChickenRepository defines the database operations for chicken batches.
type ChickenRepository interface {
	Create(executor SQLExecutor, batch *models.ChickenBatch) error
	List(filter models.ChickenBatchFilter) ([]models.ChickenBatch, error)
	GetByID(id int64) (*models.ChickenBatch, error)
	GetByBatchID(batchID string) (*models.ChickenBatch, error)
	Update(executor SQLExecutor, batch *models.ChickenBatch) error
	Delete(executor SQLExecutor, id int64) error
}

type chickenRepository struct {
	db *sql.DB
}

// NewChickenRepository creates a new instance of ChickenRepository.
func NewChickenRepository(db *sql.DB) ChickenRepository {
	return &chickenRepository{db: db}
}

const chickenColumns = `id, batch_id, breed, quantity, acquisition_date, status, notes`

func scanChickenBatch(s scanner, batch *models.ChickenBatch) error {
	return s.Scan(
		&batch.ID, &batch.BatchID, &batch.Breed, &batch.Quantity,
		&batch.AcquisitionDate, &batch.Status, &batch.Notes,
	)
}

func (r *chickenRepository) Create(executor SQLExecutor, batch *models.ChickenBatch) error {
	query := `INSERT INTO chicken_batches (batch_id, breed, quantity, acquisition_date, status, notes)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	err := executor.QueryRow(query,
		batch.BatchID, batch.Breed, batch.Quantity, batch.AcquisitionDate, batch.Status, batch.Notes,
	).Scan(&batch.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: batch ID '%s' already exists (constraint: %s)", ErrDuplicateKey, batch.BatchID, pqErr.Constraint)
		}
		return fmt.Errorf("%w: creating chicken batch: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *chickenRepository) List(filter models.ChickenBatchFilter) ([]models.ChickenBatch, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + chickenColumns + ` FROM chicken_batches`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
		argCount++
	}
	if filter.Breed != nil {
		conditions = append(conditions, fmt.Sprintf("breed = $%d", argCount))
		args = append(args, *filter.Breed)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY acquisition_date DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing chicken batches: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	batches := []models.ChickenBatch{}
	for rows.Next() {
		var batch models.ChickenBatch
		if err := scanChickenBatch(rows, &batch); err != nil {
			return nil, fmt.Errorf("%w: scanning chicken batch: %v", ErrDatabaseError, err)
		}
		batches = append(batches, batch)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating chicken batches: %v", ErrDatabaseError, err)
	}
	return batches, nil
}

func (r *chickenRepository) GetByID(id int64) (*models.ChickenBatch, error) {
	batch := &models.ChickenBatch{}
	query := `SELECT ` + chickenColumns + ` FROM chicken_batches WHERE id = $1`
	err := scanChickenBatch(r.db.QueryRow(query, id), batch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting chicken batch by ID %d: %v", ErrDatabaseError, id, err)
	}
	return batch, nil
}

func (r *chickenRepository) GetByBatchID(batchID string) (*models.ChickenBatch, error) {
	batch := &models.ChickenBatch{}
	query := `SELECT ` + chickenColumns + ` FROM chicken_batches WHERE batch_id = $1`
	err := scanChickenBatch(r.db.QueryRow(query, batchID), batch)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting chicken batch by batch ID %s: %v", ErrDatabaseError, batchID, err)
	}
	return batch, nil
}

func (r *chickenRepository) Update(executor SQLExecutor, batch *models.ChickenBatch) error {
	query := `UPDATE chicken_batches
	          SET batch_id = $1, breed = $2, quantity = $3, acquisition_date = $4, status = $5, notes = $6
	          WHERE id = $7`
	result, err := executor.Exec(query,
		batch.BatchID, batch.Breed, batch.Quantity, batch.AcquisitionDate, batch.Status, batch.Notes, batch.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("%w: batch ID '%s' already exists (constraint: %s)", ErrDuplicateKey, batch.BatchID, pqErr.Constraint)
		}
		return fmt.Errorf("%w: updating chicken batch ID %d: %v", ErrDatabaseError, batch.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a batch only. Health and production records referencing
// its business batch_id are left untouched; the reference is a soft tag.
func (r *chickenRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM chicken_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting chicken batch ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

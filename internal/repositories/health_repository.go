package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mukeshkumar286/chickegg/internal/models"

	"github.com/lib/pq"
)

// HealthRepository defines the database operations for health records.
type HealthRepository interface {
	Create(executor SQLExecutor, record *models.HealthRecord) error
	List(filter models.HealthFilter) ([]models.HealthRecord, error)
	GetByID(id int64) (*models.HealthRecord, error)
	Update(executor SQLExecutor, record *models.HealthRecord) error
	Delete(executor SQLExecutor, id int64) error
}

type healthRepository struct {
	db *sql.DB
}

// NewHealthRepository creates a new instance of HealthRepository.
func NewHealthRepository(db *sql.DB) HealthRepository {
	return &healthRepository{db: db}
}

const healthColumns = `id, date, batch_id, mortality_count, symptoms, diagnosis, treatment, notes`

func scanHealthRecord(s scanner, record *models.HealthRecord) error {
	return s.Scan(
		&record.ID, &record.Date, &record.BatchID, &record.MortalityCount,
		pq.Array(&record.Symptoms), &record.Diagnosis, &record.Treatment, &record.Notes,
	)
}

func (r *healthRepository) Create(executor SQLExecutor, record *models.HealthRecord) error {
	query := `INSERT INTO health_records (date, batch_id, mortality_count, symptoms, diagnosis, treatment, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	err := executor.QueryRow(query,
		record.Date, record.BatchID, record.MortalityCount, pq.Array(record.Symptoms),
		record.Diagnosis, record.Treatment, record.Notes,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("%w: creating health record: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *healthRepository) List(filter models.HealthFilter) ([]models.HealthRecord, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + healthColumns + ` FROM health_records`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.BatchID != nil {
		conditions = append(conditions, fmt.Sprintf("batch_id = $%d", argCount))
		args = append(args, *filter.BatchID)
		argCount++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argCount))
		args = append(args, *filter.StartDate)
		argCount++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argCount))
		args = append(args, *filter.EndDate)
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY date DESC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing health records: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	records := []models.HealthRecord{}
	for rows.Next() {
		var record models.HealthRecord
		if err := scanHealthRecord(rows, &record); err != nil {
			return nil, fmt.Errorf("%w: scanning health record: %v", ErrDatabaseError, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating health records: %v", ErrDatabaseError, err)
	}
	return records, nil
}

func (r *healthRepository) GetByID(id int64) (*models.HealthRecord, error) {
	record := &models.HealthRecord{}
	query := `SELECT ` + healthColumns + ` FROM health_records WHERE id = $1`
	err := scanHealthRecord(r.db.QueryRow(query, id), record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting health record by ID %d: %v", ErrDatabaseError, id, err)
	}
	return record, nil
}

func (r *healthRepository) Update(executor SQLExecutor, record *models.HealthRecord) error {
	query := `UPDATE health_records
	          SET date = $1, batch_id = $2, mortality_count = $3, symptoms = $4, diagnosis = $5, treatment = $6, notes = $7
	          WHERE id = $8`
	result, err := executor.Exec(query,
		record.Date, record.BatchID, record.MortalityCount, pq.Array(record.Symptoms),
		record.Diagnosis, record.Treatment, record.Notes, record.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating health record ID %d: %v", ErrDatabaseError, record.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *healthRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM health_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting health record ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mukeshkumar286/chickegg/internal/models"
)

// ProductionRepository defines the database operations for production records.
type ProductionRepository interface {
	Create(executor SQLExecutor, record *models.ProductionRecord) error
	List(filter models.ProductionFilter) ([]models.ProductionRecord, error)
	GetByID(id int64) (*models.ProductionRecord, error)
	Update(executor SQLExecutor, record *models.ProductionRecord) error
	Delete(executor SQLExecutor, id int64) error
}

type productionRepository struct {
	db *sql.DB
}

// NewProductionRepository creates a new instance of ProductionRepository.
func NewProductionRepository(db *sql.DB) ProductionRepository {
	return &productionRepository{db: db}
}

const productionColumns = `id, date, egg_count, grade_a, grade_b, broken, notes, batch_id`

func scanProductionRecord(s scanner, record *models.ProductionRecord) error {
	return s.Scan(
		&record.ID, &record.Date, &record.EggCount, &record.GradeA, &record.GradeB,
		&record.Broken, &record.Notes, &record.BatchID,
	)
}

func (r *productionRepository) Create(executor SQLExecutor, record *models.ProductionRecord) error {
	query := `INSERT INTO production_records (date, egg_count, grade_a, grade_b, broken, notes, batch_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	err := executor.QueryRow(query,
		record.Date, record.EggCount, record.GradeA, record.GradeB, record.Broken, record.Notes, record.BatchID,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("%w: creating production record: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *productionRepository) List(filter models.ProductionFilter) ([]models.ProductionRecord, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + productionColumns + ` FROM production_records`)

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
		return nil, fmt.Errorf("%w: listing production records: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	records := []models.ProductionRecord{}
	for rows.Next() {
		var record models.ProductionRecord
		if err := scanProductionRecord(rows, &record); err != nil {
			return nil, fmt.Errorf("%w: scanning production record: %v", ErrDatabaseError, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating production records: %v", ErrDatabaseError, err)
	}
	return records, nil
}

func (r *productionRepository) GetByID(id int64) (*models.ProductionRecord, error) {
	record := &models.ProductionRecord{}
	query := `SELECT ` + productionColumns + ` FROM production_records WHERE id = $1`
	err := scanProductionRecord(r.db.QueryRow(query, id), record)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting production record by ID %d: %v", ErrDatabaseError, id, err)
	}
	return record, nil
}

func (r *productionRepository) Update(executor SQLExecutor, record *models.ProductionRecord) error {
	query := `UPDATE production_records
	          SET date = $1, egg_count = $2, grade_a = $3, grade_b = $4, broken = $5, notes = $6, batch_id = $7
	          WHERE id = $8`
	result, err := executor.Exec(query,
		record.Date, record.EggCount, record.GradeA, record.GradeB, record.Broken, record.Notes, record.BatchID, record.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating production record ID %d: %v", ErrDatabaseError, record.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productionRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM production_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting production record ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mukeshkumar286/chickegg/internal/models"

	"github.com/lib/pq"
)

// FinancialRepository defines the database operations for financial entries.
type FinancialRepository interface {
	Create(executor SQLExecutor, entry *models.FinancialEntry) error
	List(filter models.FinancialFilter) ([]models.FinancialEntry, error)
	GetByID(id int64) (*models.FinancialEntry, error)
	Update(executor SQLExecutor, entry *models.FinancialEntry) error
	Delete(executor SQLExecutor, id int64) error
}

type financialRepository struct {
	db *sql.DB
}

// NewFinancialRepository creates a new instance of FinancialRepository.
func NewFinancialRepository(db *sql.DB) FinancialRepository {
	return &financialRepository{db: db}
}

const financialColumns = `id, date, amount, type, category, description, tags`

func scanFinancialEntry(s scanner, entry *models.FinancialEntry) error {
	return s.Scan(
		&entry.ID, &entry.Date, &entry.Amount, &entry.Type, &entry.Category,
		&entry.Description, pq.Array(&entry.Tags),
	)
}

func (r *financialRepository) Create(executor SQLExecutor, entry *models.FinancialEntry) error {
	query := `INSERT INTO financial_entries (date, amount, type, category, description, tags)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id`
	err := executor.QueryRow(query,
		entry.Date, entry.Amount, entry.Type, entry.Category, entry.Description, pq.Array(entry.Tags),
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("%w: creating financial entry: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *financialRepository) List(filter models.FinancialFilter) ([]models.FinancialEntry, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + financialColumns + ` FROM financial_entries`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argCount))
		args = append(args, *filter.Type)
		argCount++
	}
	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *filter.Category)
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
		return nil, fmt.Errorf("%w: listing financial entries: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	entries := []models.FinancialEntry{}
	for rows.Next() {
		var entry models.FinancialEntry
		if err := scanFinancialEntry(rows, &entry); err != nil {
			return nil, fmt.Errorf("%w: scanning financial entry: %v", ErrDatabaseError, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating financial entries: %v", ErrDatabaseError, err)
	}
	return entries, nil
}

func (r *financialRepository) GetByID(id int64) (*models.FinancialEntry, error) {
	entry := &models.FinancialEntry{}
	query := `SELECT ` + financialColumns + ` FROM financial_entries WHERE id = $1`
	err := scanFinancialEntry(r.db.QueryRow(query, id), entry)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting financial entry by ID %d: %v", ErrDatabaseError, id, err)
	}
	return entry, nil
}

func (r *financialRepository) Update(executor SQLExecutor, entry *models.FinancialEntry) error {
	query := `UPDATE financial_entries
	          SET date = $1, amount = $2, type = $3, category = $4, description = $5, tags = $6
	          WHERE id = $7`
	result, err := executor.Exec(query,
		entry.Date, entry.Amount, entry.Type, entry.Category, entry.Description, pq.Array(entry.Tags), entry.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating financial entry ID %d: %v", ErrDatabaseError, entry.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *financialRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM financial_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting financial entry ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mukeshkumar286/chickegg/internal/models"

	"github.com/lib/pq"
)

// ResearchRepository defines the database operations for research notes.
// Tag-intersection is not expressible as a simple equality predicate, so
// List only applies the SQL filters; callers post-filter by tags.
type ResearchRepository interface {
	Create(executor SQLExecutor, note *models.ResearchNote) error
	List(filter models.ResearchFilter) ([]models.ResearchNote, error)
	GetByID(id int64) (*models.ResearchNote, error)
	Update(executor SQLExecutor, note *models.ResearchNote) error
	Delete(executor SQLExecutor, id int64) error
}

type researchRepository struct {
	db *sql.DB
}

// NewResearchRepository creates a new instance of ResearchRepository.
func NewResearchRepository(db *sql.DB) ResearchRepository {
	return &researchRepository{db: db}
}

const researchColumns = `id, title, content, date, tags, category`

func scanResearchNote(s scanner, note *models.ResearchNote) error {
	return s.Scan(
		&note.ID, &note.Title, &note.Content, &note.Date,
		pq.Array(&note.Tags), &note.Category,
	)
}

func (r *researchRepository) Create(executor SQLExecutor, note *models.ResearchNote) error {
	query := `INSERT INTO research_notes (title, content, date, tags, category)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	err := executor.QueryRow(query,
		note.Title, note.Content, note.Date, pq.Array(note.Tags), note.Category,
	).Scan(&note.ID)
	if err != nil {
		return fmt.Errorf("%w: creating research note: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *researchRepository) List(filter models.ResearchFilter) ([]models.ResearchNote, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + researchColumns + ` FROM research_notes`)

	var conditions []string
	var args []interface{}
	argCount := 1

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
		return nil, fmt.Errorf("%w: listing research notes: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	notes := []models.ResearchNote{}
	for rows.Next() {
		var note models.ResearchNote
		if err := scanResearchNote(rows, &note); err != nil {
			return nil, fmt.Errorf("%w: scanning research note: %v", ErrDatabaseError, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating research notes: %v", ErrDatabaseError, err)
	}
	return notes, nil
}

func (r *researchRepository) GetByID(id int64) (*models.ResearchNote, error) {
	note := &models.ResearchNote{}
	query := `SELECT ` + researchColumns + ` FROM research_notes WHERE id = $1`
	err := scanResearchNote(r.db.QueryRow(query, id), note)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting research note by ID %d: %v", ErrDatabaseError, id, err)
	}
	return note, nil
}

func (r *researchRepository) Update(executor SQLExecutor, note *models.ResearchNote) error {
	query := `UPDATE research_notes
	          SET title = $1, content = $2, date = $3, tags = $4, category = $5
	          WHERE id = $6`
	result, err := executor.Exec(query,
		note.Title, note.Content, note.Date, pq.Array(note.Tags), note.Category, note.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating research note ID %d: %v", ErrDatabaseError, note.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *researchRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM research_notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting research note ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

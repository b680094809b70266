package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mukeshkumar286/chickegg/internal/models"
)

// InventoryRepository defines the database operations for inventory items.
type InventoryRepository interface {
	Create(executor SQLExecutor, item *models.InventoryItem) error
	List(filter models.InventoryFilter) ([]models.InventoryItem, error)
	GetByID(id int64) (*models.InventoryItem, error)
	Update(executor SQLExecutor, item *models.InventoryItem) error
	Delete(executor SQLExecutor, id int64) error
	AdjustQuantity(executor SQLExecutor, id int64, adjustment float64) (*models.InventoryItem, error)
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

const inventoryColumns = `id, name, category, quantity, unit, reorder_level, last_updated, notes`

func scanInventoryItem(s scanner, item *models.InventoryItem) error {
	return s.Scan(
		&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit,
		&item.ReorderLevel, &item.LastUpdated, &item.Notes,
	)
}

func (r *inventoryRepository) Create(executor SQLExecutor, item *models.InventoryItem) error {
	query := `INSERT INTO inventory_items (name, category, quantity, unit, reorder_level, last_updated, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id`
	err := executor.QueryRow(query,
		item.Name, item.Category, item.Quantity, item.Unit, item.ReorderLevel, item.LastUpdated, item.Notes,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("%w: creating inventory item: %v", ErrDatabaseError, err)
	}
	return nil
}

// List applies the category filter in SQL; the below-reorder-level predicate
// is applied by the service after the scan.
func (r *inventoryRepository) List(filter models.InventoryFilter) ([]models.InventoryItem, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + inventoryColumns + ` FROM inventory_items`)

	var args []interface{}
	if filter.Category != nil {
		queryBuilder.WriteString(" WHERE category = $1")
		args = append(args, *filter.Category)
	}
	queryBuilder.WriteString(" ORDER BY name ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listing inventory items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := scanInventoryItem(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *inventoryRepository) GetByID(id int64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE id = $1`
	err := scanInventoryItem(r.db.QueryRow(query, id), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting inventory item by ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

func (r *inventoryRepository) Update(executor SQLExecutor, item *models.InventoryItem) error {
	query := `UPDATE inventory_items
	          SET name = $1, category = $2, quantity = $3, unit = $4, reorder_level = $5, last_updated = $6, notes = $7
	          WHERE id = $8`
	result, err := executor.Exec(query,
		item.Name, item.Category, item.Quantity, item.Unit, item.ReorderLevel, item.LastUpdated, item.Notes, item.ID,
	)
	if err != nil {
		return fmt.Errorf("%w: updating inventory item ID %d: %v", ErrDatabaseError, item.ID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *inventoryRepository) Delete(executor SQLExecutor, id int64) error {
	result, err := executor.Exec(`DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting inventory item ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdjustQuantity applies a signed adjustment as a single conditional update
// so concurrent adjustments cannot lose each other's writes or breach the
// zero floor. When no row comes back, a probe distinguishes a missing item
// from a floor violation; in either case the stored record is unchanged.
func (r *inventoryRepository) AdjustQuantity(executor SQLExecutor, id int64, adjustment float64) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `UPDATE inventory_items
	          SET quantity = quantity + $1, last_updated = $2
	          WHERE id = $3 AND quantity + $1 >= 0
	          RETURNING ` + inventoryColumns
	err := scanInventoryItem(executor.QueryRow(query, adjustment, time.Now(), id), item)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			checkErr := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM inventory_items WHERE id = $1)`, id).Scan(&exists)
			if checkErr != nil {
				return nil, fmt.Errorf("%w: checking inventory item ID %d: %v", ErrDatabaseError, id, checkErr)
			}
			if !exists {
				return nil, ErrNotFound
			}
			return nil, ErrQuantityFloor
		}
		return nil, fmt.Errorf("%w: adjusting quantity for inventory item ID %d: %v", ErrDatabaseError, id, err)
	}
	return item, nil
}

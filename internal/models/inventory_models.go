package models

import "time"

// InventoryItem tracks a consumable or piece of equipment. Quantity may be
// fractional (feed in kg, medicine in liters) and never goes below zero.
type InventoryItem struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Category     string    `json:"category" db:"category" binding:"required"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	Unit         string    `json:"unit" db:"unit" binding:"required"`
	ReorderLevel *float64  `json:"reorderLevel,omitempty" db:"reorder_level"`
	LastUpdated  time.Time `json:"lastUpdated" db:"last_updated"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
}

// InventoryFilter narrows an inventory listing. BelowReorderLevel keeps
// only items with a reorder level set and quantity at or below it; it is
// applied in memory after the SQL filters.
type InventoryFilter struct {
	Category          *string
	BelowReorderLevel bool
}

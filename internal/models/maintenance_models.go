package models

import "time"

// Maintenance task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// MaintenanceTask is a coop chore. Completed flips via the toggle
// operation only; there is no terminal state.
type MaintenanceTask struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title" binding:"required"`
	Description *string    `json:"description,omitempty" db:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`
	Completed   bool       `json:"completed" db:"completed"`
	Category    string     `json:"category" db:"category" binding:"required"`
	Priority    string     `json:"priority" db:"priority"`
}

// MaintenanceFilter narrows a task listing.
type MaintenanceFilter struct {
	Completed *bool
	Category  *string
	Priority  *string
}

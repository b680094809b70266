package models

import "time"

// ResearchNote is a free-form note with tags for later retrieval.
type ResearchNote struct {
	ID       int64     `json:"id" db:"id"`
	Title    string    `json:"title" db:"title" binding:"required"`
	Content  string    `json:"content" db:"content" binding:"required"`
	Date     time.Time `json:"date" db:"date"`
	Tags     []string  `json:"tags,omitempty" db:"tags"`
	Category string    `json:"category" db:"category" binding:"required"`
}

// ResearchFilter narrows a note listing. Tags matches any overlap between
// the requested tags and a note's tag list; it is applied in memory after
// the SQL filters.
type ResearchFilter struct {
	Category  *string
	Tags      []string
	StartDate *time.Time
	EndDate   *time.Time
}

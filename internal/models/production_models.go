package models

import "time"

// ProductionRecord is one day's egg collection entry. Grade counts are
// recorded as reported and are not reconciled against EggCount.
type ProductionRecord struct {
	ID       int64     `json:"id" db:"id"`
	Date     time.Time `json:"date" db:"date"`
	EggCount int       `json:"eggCount" db:"egg_count"`
	GradeA   *int      `json:"gradeA,omitempty" db:"grade_a"`
	GradeB   *int      `json:"gradeB,omitempty" db:"grade_b"`
	Broken   *int      `json:"broken,omitempty" db:"broken"`
	Notes    *string   `json:"notes,omitempty" db:"notes"`
	BatchID  *string   `json:"batchId,omitempty" db:"batch_id"`
}

// ProductionFilter narrows a production record listing.
type ProductionFilter struct {
	BatchID   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// ProductionSummary aggregates the records inside a trailing day window.
// Percentages are rounded to whole numbers; DailyAverage divides by the
// number of distinct calendar days represented, not the record count.
type ProductionSummary struct {
	TotalEggs        int `json:"totalEggs"`
	GradeAPercentage int `json:"gradeAPercentage"`
	GradeBPercentage int `json:"gradeBPercentage"`
	BrokenPercentage int `json:"brokenPercentage"`
	DailyAverage     int `json:"dailyAverage"`
}

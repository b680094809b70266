package models

import "time"

// Chicken batch lifecycle statuses.
const (
	BatchStatusActive   = "active"
	BatchStatusSold     = "sold"
	BatchStatusDeceased = "deceased"
)

// ChickenBatch is a group of chickens acquired together. BatchID is the
// operator-facing business key, unique across batches and distinct from
// the numeric row id. Quantity is fixed at acquisition and is not
// decremented by health-record mortality.
type ChickenBatch struct {
	ID              int64     `json:"id" db:"id"`
	BatchID         string    `json:"batchId" db:"batch_id" binding:"required"`
	Breed           string    `json:"breed" db:"breed" binding:"required"`
	Quantity        int       `json:"quantity" db:"quantity" binding:"required,gt=0"`
	AcquisitionDate time.Time `json:"acquisitionDate" db:"acquisition_date" binding:"required"`
	Status          string    `json:"status" db:"status" binding:"required"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
}

// ChickenBatchFilter narrows a batch listing.
type ChickenBatchFilter struct {
	Status *string
	Breed  *string
}

// HealthRecord is an observation logged against a batch. BatchID is a soft
// text reference; no relational constraint ties it to chicken_batches.
type HealthRecord struct {
	ID             int64     `json:"id" db:"id"`
	Date           time.Time `json:"date" db:"date"`
	BatchID        string    `json:"batchId" db:"batch_id" binding:"required"`
	MortalityCount *int      `json:"mortalityCount,omitempty" db:"mortality_count"`
	Symptoms       []string  `json:"symptoms,omitempty" db:"symptoms"`
	Diagnosis      *string   `json:"diagnosis,omitempty" db:"diagnosis"`
	Treatment      *string   `json:"treatment,omitempty" db:"treatment"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
}

// HealthFilter narrows a health record listing.
type HealthFilter struct {
	BatchID   *string
	StartDate *time.Time
	EndDate   *time.Time
}

// HealthSummary aggregates all health records against all batches
// (regardless of batch status). CommonSymptoms holds at most the five most
// frequent symptom tokens, ties broken by first encounter.
type HealthSummary struct {
	TotalMortality    int      `json:"totalMortality"`
	HealthyPercentage int      `json:"healthyPercentage"`
	CommonSymptoms    []string `json:"commonSymptoms"`
}

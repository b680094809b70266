package models

import "time"

// Financial entry types. Amounts are always stored positive; the type
// carries the sign semantics.
const (
	FinancialTypeIncome     = "income"
	FinancialTypeExpense    = "expense"
	FinancialTypeInvestment = "investment"
	FinancialTypeCapital    = "capital"
)

// FinancialEntry represents a single money movement on the farm ledger.
type FinancialEntry struct {
	ID          int64     `json:"id" db:"id"`
	Date        time.Time `json:"date" db:"date"`
	Amount      float64   `json:"amount" db:"amount" binding:"required,gt=0"`
	Type        string    `json:"type" db:"type" binding:"required"`
	Category    string    `json:"category" db:"category" binding:"required"`
	Description *string   `json:"description,omitempty" db:"description"`
	Tags        []string  `json:"tags,omitempty" db:"tags"`
}

// FinancialFilter narrows a financial entry listing. Nil fields are
// ignored; date bounds are inclusive.
type FinancialFilter struct {
	Type      *string
	Category  *string
	StartDate *time.Time
	EndDate   *time.Time
}

// FinancialSummary is the all-time aggregate over the full ledger.
type FinancialSummary struct {
	TotalCapital       float64            `json:"totalCapital"`
	TotalInvestments   float64            `json:"totalInvestments"`
	TotalIncome        float64            `json:"totalIncome"`
	TotalExpenses      float64            `json:"totalExpenses"`
	ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
}

package model

import "time"

// Expense is a standalone clinic outgoing; it references no other
// entity.
type Expense struct {
	ID          ExpenseID `json:"id"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Note        string    `json:"note"`
}

// DefaultExpenseCategory is the form default (อื่นๆ = other).
const DefaultExpenseCategory = "อื่นๆ"

type CreateExpenseRequest struct {
	Date        *time.Time `json:"date"`
	Category    string     `json:"category"`
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	Note        string     `json:"note"`
}

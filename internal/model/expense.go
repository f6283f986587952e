package model

import "time"

// Expense represents a logged expense from the database.
type Expense struct {
	ID                  string    `json:"id"`
	AccountID           string    `json:"accountId"`
	Category            string    `json:"category"`
	Description         string    `json:"description"`
	Amount              float64   `json:"amount"`
	Timestamp           time.Time `json:"timestamp"`
	IsRecurring         bool      `json:"isRecurring"`
	RecurringTemplateID string    `json:"recurringTemplateId,omitempty"`
	AutoGenerated       bool      `json:"autoGenerated"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ExpenseStats summarizes the expenses of one resolved period.
// Categories maps category name to the summed amount; AveragePerDay is
// total spend divided by days elapsed so far (zero when no day has
// elapsed yet).
type ExpenseStats struct {
	Total          float64            `json:"total"`
	Count          int                `json:"count"`
	Categories     map[string]float64 `json:"categories"`
	ByAccount      map[string]float64 `json:"byAccount"`
	RecurringTotal float64            `json:"recurringTotal"`
	AveragePerDay  float64            `json:"averagePerDay"`
}

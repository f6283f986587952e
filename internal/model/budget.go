package model

import "time"

// Budget modes: a total budget caps the whole account, a category budget
// caps a single category.
const (
	BudgetModeTotal    = "total"
	BudgetModeCategory = "category"
)

// Budget represents a spending limit for an account, either in total or
// for one category. Category is empty for total-mode budgets.
type Budget struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Mode      string    `json:"mode"`
	Category  string    `json:"category,omitempty"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Budget status bands, matching the dashboard's color coding: spending
// under 70% of budget is safe, under 90% is a warning, 90% and over is
// danger.
const (
	BudgetStatusSafe    = "safe"
	BudgetStatusWarning = "warning"
	BudgetStatusDanger  = "danger"
)

// BudgetStatus reports spend against one budget for a resolved period.
type BudgetStatus struct {
	Budget     Budget  `json:"budget"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
}

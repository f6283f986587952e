package model

import "github.com/akaur/Budget-Buddy-Backend/internal/cycle"

// Dashboard represents the assembled state of one dashboard load: the
// resolved active period (marker-overlaid in calendar mode), the
// expenses that fall inside it, their statistics, and budget status per
// configured budget.
type Dashboard struct {
	Period    cycle.Period   `json:"period"`
	Key       string         `json:"key"`
	ViewMode  cycle.ViewMode `json:"viewMode"`
	Expenses  []Expense      `json:"expenses"`
	Stats     ExpenseStats   `json:"stats"`
	Budgets   []BudgetStatus `json:"budgets"`
	AccountID string         `json:"accountId,omitempty"`
}

// StatementAlert flags an account whose billing cycle closes soon.
type StatementAlert struct {
	AccountID     string       `json:"accountId"`
	AccountName   string       `json:"accountName"`
	DaysRemaining int          `json:"daysRemaining"`
	Cycle         cycle.Period `json:"cycle"`
}

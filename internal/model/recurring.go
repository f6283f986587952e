package model

import "time"

// RecurringTemplate represents a recurring expense template from the
// database. An expense is generated from the template once per calendar
// month, on or after BillingDay. LastGeneratedMonth/Year record the most
// recent generation; both are zero for a template that has never
// generated.
type RecurringTemplate struct {
	ID                 string    `json:"id"`
	AccountID          string    `json:"accountId"`
	Category           string    `json:"category"`
	Description        string    `json:"description"`
	Amount             float64   `json:"amount"`
	BillingDay         int       `json:"billingDay"`
	IsActive           bool      `json:"isActive"`
	LastGeneratedMonth int       `json:"lastGeneratedMonth,omitempty"` // 1-12
	LastGeneratedYear  int       `json:"lastGeneratedYear,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// DueForGeneration reports whether the template should generate an
// expense for the month containing now: the template is active, has not
// generated for this month yet, and the billing day has been reached.
func (t RecurringTemplate) DueForGeneration(now time.Time) bool {
	if !t.IsActive {
		return false
	}
	year, month, day := now.Date()
	if t.LastGeneratedYear == year && t.LastGeneratedMonth == int(month) {
		return false
	}
	// Billing days past the end of a short month come due on its last day.
	due := t.BillingDay
	if last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); due > last {
		due = last
	}
	return day >= due
}

// GenerationDate returns the date a generated expense carries for the
// month containing now: the billing day, clamped to the month's last
// day. A catch-up run after the billing day still dates the expense on
// the billing day itself.
func (t RecurringTemplate) GenerationDate(now time.Time) time.Time {
	year, month, _ := now.Date()
	day := t.BillingDay
	if last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day(); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

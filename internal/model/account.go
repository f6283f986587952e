package model

import "time"

// Account represents a tracked payment account or card.
// AnchorDay is the day of month (1-31) the account's billing cycle
// starts on; zero means no anchor is configured and billing-mode
// resolution falls back to the calendar month for this account.
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	AnchorDay  int       `json:"anchorDay,omitempty"`
	IsArchived bool      `json:"isArchived"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	IncludeArchived bool
}

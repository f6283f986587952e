package model

import (
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
)

// Settings represents the stored user settings row.
// A single row exists; it is created with defaults on first read and
// updated in place, never deleted.
type Settings struct {
	ID        string         `json:"id"`
	ViewMode  cycle.ViewMode `json:"viewMode"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// SettingsView is the settings record as exposed to callers: the view
// mode plus the anchor day of every tracked account. Anchor days live on
// the account rows; this aggregates them into one snapshot so the period
// logic sees an immutable value per call.
type SettingsView struct {
	ViewMode   cycle.ViewMode `json:"viewMode"`
	AnchorDays map[string]int `json:"anchorDays"` // accountID -> anchor day, absent when unset
}

// AnchorDay returns the anchor day configured for the given account, or
// zero when no anchor is set.
func (s SettingsView) AnchorDay(accountID string) int {
	return s.AnchorDays[accountID]
}

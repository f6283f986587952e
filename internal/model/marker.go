package model

import "time"

// PeriodMarker represents a manual period reset from the database.
// Markers are append-only: created by an explicit user action, immutable
// once written, never deleted in normal operation. TotalAtReset is the
// cumulative spend of the period being closed, stored as a fact; it does
// not feed back into period resolution.
type PeriodMarker struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	TotalAtReset float64   `json:"totalAtReset"`
	CreatedAt    time.Time `json:"createdAt"`
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// MarkerRepository handles database operations for period markers.
// Markers are append-only; there are no update or delete operations.
type MarkerRepository struct {
	db *sql.DB
}

// NewMarkerRepository creates a new MarkerRepository.
func NewMarkerRepository(db *sql.DB) *MarkerRepository {
	return &MarkerRepository{db: db}
}

// GetMarkers retrieves all period markers, newest first.
func (r *MarkerRepository) GetMarkers(ctx context.Context) ([]model.PeriodMarker, error) {
	query := `
		SELECT id, timestamp, total_at_reset, created_at
		FROM period_marker
		ORDER BY timestamp DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query period markers: %w", err)
	}
	defer rows.Close()

	markers := []model.PeriodMarker{}
	for rows.Next() {
		marker, err := scanMarker(rows)
		if err != nil {
			return nil, err
		}
		markers = append(markers, marker)
	}
	return markers, rows.Err()
}

// GetMarkerTimestamps retrieves the instants of all period markers.
func (r *MarkerRepository) GetMarkerTimestamps(ctx context.Context) ([]time.Time, error) {
	markers, err := r.GetMarkers(ctx)
	if err != nil {
		return nil, err
	}

	timestamps := make([]time.Time, len(markers))
	for i, marker := range markers {
		timestamps[i] = marker.Timestamp
	}
	return timestamps, nil
}

// InsertMarker stores a new period marker.
func (r *MarkerRepository) InsertMarker(ctx context.Context, marker model.PeriodMarker) error {
	query := `
		INSERT INTO period_marker (id, timestamp, total_at_reset, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		marker.ID, FormatTime(marker.Timestamp), marker.TotalAtReset,
		FormatTime(marker.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert period marker: %w", err)
	}
	return nil
}

func scanMarker(row scanner) (model.PeriodMarker, error) {
	var marker model.PeriodMarker
	var timestamp, createdAt string

	err := row.Scan(&marker.ID, &timestamp, &marker.TotalAtReset, &createdAt)
	if err != nil {
		return model.PeriodMarker{}, err
	}

	if marker.Timestamp, err = ParseTime(timestamp); err != nil {
		return model.PeriodMarker{}, err
	}
	if marker.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.PeriodMarker{}, err
	}
	return marker, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// SettingsRepository handles database operations for application settings.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings retrieves the settings row. A zero-value Settings with no error
// means nothing has been stored yet; callers decide whether to seed defaults.
func (r *SettingsRepository) GetSettings(ctx context.Context) (model.Settings, error) {
	query := `
		SELECT id, view_mode, created_at, updated_at
		FROM settings
		LIMIT 1
	`

	var s model.Settings
	var createdAt, updatedAt string

	err := r.db.QueryRowContext(ctx, query).Scan(&s.ID, &s.ViewMode, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return model.Settings{}, nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	if s.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Settings{}, err
	}
	if s.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Settings{}, err
	}

	return s, nil
}

// InsertSettings stores a new settings row.
func (r *SettingsRepository) InsertSettings(ctx context.Context, s model.Settings) error {
	query := `
		INSERT INTO settings (id, view_mode, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.ViewMode, FormatTime(s.CreatedAt), FormatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert settings: %w", err)
	}
	return nil
}

// UpdateViewMode changes the stored view mode.
func (r *SettingsRepository) UpdateViewMode(ctx context.Context, id string, mode cycle.ViewMode) error {
	query := `
		UPDATE settings
		SET view_mode = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, mode, FormatTime(time.Now()), id)
	if err != nil {
		return fmt.Errorf("failed to update view mode: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// SettingsService handles settings-related business logic operations.
// The settings row is created lazily with defaults on first read, so
// callers never observe a missing-settings state.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
	accountRepo  *repository.AccountRepository
}

// NewSettingsService creates a new SettingsService with the provided repository dependencies.
func NewSettingsService(
	settingsRepo *repository.SettingsRepository,
	accountRepo *repository.AccountRepository,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		accountRepo:  accountRepo,
	}
}

// GetSettings returns the stored settings, seeding a calendar-mode default
// row when none exists yet.
func (s *SettingsService) GetSettings(ctx context.Context) (model.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	if settings.ID == "" {
		now := time.Now()
		settings = model.Settings{
			ID:        uuid.New().String(),
			ViewMode:  cycle.ViewCalendar,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.settingsRepo.InsertSettings(ctx, settings); err != nil {
			return model.Settings{}, fmt.Errorf("failed to seed default settings: %w", err)
		}
	}

	return settings, nil
}

// GetSettingsView returns the settings together with the anchor day of
// every active account, as one consistent snapshot.
func (s *SettingsService) GetSettingsView(ctx context.Context) (model.SettingsView, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return model.SettingsView{}, err
	}

	anchors, err := s.accountRepo.GetAnchorDays(ctx)
	if err != nil {
		return model.SettingsView{}, err
	}

	return model.SettingsView{
		ViewMode:   settings.ViewMode,
		AnchorDays: anchors,
	}, nil
}

// UpdateViewMode switches between calendar and billing view.
func (s *SettingsService) UpdateViewMode(ctx context.Context, mode string) (model.Settings, error) {
	viewMode := cycle.ViewMode(mode)
	if !cycle.ValidViewModes[viewMode] {
		return model.Settings{}, apperrors.ErrInvalidViewMode
	}

	settings, err := s.GetSettings(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	if err := s.settingsRepo.UpdateViewMode(ctx, settings.ID, viewMode); err != nil {
		return model.Settings{}, err
	}

	settings.ViewMode = viewMode
	settings.UpdatedAt = time.Now()
	return settings, nil
}

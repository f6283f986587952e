package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// PeriodService resolves billing periods against the stored settings,
// account anchors and period markers. It is the single place where the
// pure cycle package meets persisted state.
type PeriodService struct {
	settingsService *SettingsService
	markerRepo      *repository.MarkerRepository
	expenseRepo     *repository.ExpenseRepository
	accountRepo     *repository.AccountRepository
}

// NewPeriodService creates a new PeriodService with the provided dependencies.
func NewPeriodService(
	settingsService *SettingsService,
	markerRepo *repository.MarkerRepository,
	expenseRepo *repository.ExpenseRepository,
	accountRepo *repository.AccountRepository,
) *PeriodService {
	return &PeriodService{
		settingsService: settingsService,
		markerRepo:      markerRepo,
		expenseRepo:     expenseRepo,
		accountRepo:     accountRepo,
	}
}

// ActivePeriod is one fully resolved period: the date range plus the view
// mode that actually produced it and its stable key.
type ActivePeriod struct {
	Period    cycle.Period   `json:"period"`
	Key       string         `json:"key"`
	ViewMode  cycle.ViewMode `json:"viewMode"`
	AccountID string         `json:"accountId,omitempty"`
}

// ResolveActive resolves the period containing ref for the given account.
// An empty accountID resolves against global settings with no anchor, which
// always yields the calendar month. Period markers narrow calendar-mode
// periods; billing cycles are anchored to a statement day and ignore them.
func (s *PeriodService) ResolveActive(ctx context.Context, accountID string, ref time.Time) (ActivePeriod, error) {
	var view model.SettingsView
	var markers []time.Time

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		view, err = s.settingsService.GetSettingsView(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		markers, err = s.markerRepo.GetMarkerTimestamps(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return ActivePeriod{}, err
	}

	anchorDay := view.AnchorDay(accountID)
	period, err := cycle.ResolveActivePeriod(view.ViewMode, anchorDay, ref)
	if err != nil {
		return ActivePeriod{}, fmt.Errorf("failed to resolve active period: %w", err)
	}

	effective := cycle.EffectiveMode(view.ViewMode, anchorDay)
	if effective == cycle.ViewCalendar {
		period = cycle.ApplyMarkerOverlay(period, markers)
	}

	return ActivePeriod{
		Period:    period,
		Key:       cycle.Key(effective, period),
		ViewMode:  effective,
		AccountID: accountID,
	}, nil
}

// History enumerates the most recent count periods for the given account,
// newest first, including the current one.
func (s *PeriodService) History(ctx context.Context, accountID string, ref time.Time, count int) ([]cycle.HistoricalPeriod, error) {
	view, err := s.settingsService.GetSettingsView(ctx)
	if err != nil {
		return nil, err
	}

	periods, err := cycle.History(view.ViewMode, view.AnchorDay(accountID), ref, count)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate period history: %w", err)
	}
	return periods, nil
}

// ExpensesForKey returns the expenses that fall inside the period a
// history key denotes.
func (s *PeriodService) ExpensesForKey(ctx context.Context, key, accountID string) ([]model.Expense, error) {
	start, end, err := cycle.ParseKey(key)
	if err != nil {
		return nil, err
	}
	return s.expenseRepo.GetExpensesInRange(ctx, start, end, accountID)
}

// ResetPeriod closes the current calendar period at the given instant by
// appending a period marker. The marker records the total spent in the
// period being closed; subsequent resolutions start from the marker.
func (s *PeriodService) ResetPeriod(ctx context.Context, at time.Time) (model.PeriodMarker, error) {
	active, err := s.ResolveActive(ctx, "", at)
	if err != nil {
		return model.PeriodMarker{}, err
	}

	total, err := s.expenseRepo.SumInRange(ctx, active.Period.Start, at, "")
	if err != nil {
		return model.PeriodMarker{}, err
	}

	marker := model.PeriodMarker{
		ID:           uuid.New().String(),
		Timestamp:    at,
		TotalAtReset: total,
		CreatedAt:    time.Now(),
	}

	if err := s.markerRepo.InsertMarker(ctx, marker); err != nil {
		return model.PeriodMarker{}, fmt.Errorf("failed to reset period: %w", err)
	}
	return marker, nil
}

// GetMarkers returns all period markers, newest first.
func (s *PeriodService) GetMarkers(ctx context.Context) ([]model.PeriodMarker, error) {
	return s.markerRepo.GetMarkers(ctx)
}

// StatementAlerts lists accounts whose billing cycle ends within the given
// number of days. Accounts without a billing anchor never alert.
func (s *PeriodService) StatementAlerts(ctx context.Context, ref time.Time, withinDays int) ([]model.StatementAlert, error) {
	accounts, err := s.accountRepo.GetAccounts(ctx, model.AccountFilter{})
	if err != nil {
		return nil, err
	}

	alerts := []model.StatementAlert{}
	for _, account := range accounts {
		if account.AnchorDay == 0 {
			continue
		}

		period, err := cycle.ResolveBillingCycle(account.AnchorDay, ref)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cycle for account %s: %w", account.ID, err)
		}

		if period.DaysRemaining <= withinDays {
			alerts = append(alerts, model.StatementAlert{
				AccountID:     account.ID,
				AccountName:   account.Name,
				DaysRemaining: period.DaysRemaining,
				Cycle:         period,
			})
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].DaysRemaining < alerts[j].DaysRemaining
	})
	return alerts, nil
}

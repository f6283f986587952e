package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
)

// MakeID generates a unique ID for test entities.
func MakeID() string {
	return uuid.New().String()
}

// NewTestSettingsService wires a SettingsService against the test database.
func NewTestSettingsService(t *testing.T, db *sql.DB) *service.SettingsService {
	t.Helper()

	settingsRepo := repository.NewSettingsRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	return service.NewSettingsService(settingsRepo, accountRepo)
}

// NewTestAccountService wires an AccountService against the test database.
func NewTestAccountService(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	return service.NewAccountService(repository.NewAccountRepository(db))
}

// NewTestPeriodService wires a PeriodService against the test database.
func NewTestPeriodService(t *testing.T, db *sql.DB) *service.PeriodService {
	t.Helper()

	return service.NewPeriodService(
		NewTestSettingsService(t, db),
		repository.NewMarkerRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewAccountRepository(db),
	)
}

// NewTestExpenseService wires an ExpenseService against the test database.
func NewTestExpenseService(t *testing.T, db *sql.DB) *service.ExpenseService {
	t.Helper()

	return service.NewExpenseService(
		repository.NewExpenseRepository(db),
		repository.NewAccountRepository(db),
		NewTestPeriodService(t, db),
	)
}

// NewTestBudgetService wires a BudgetService against the test database.
func NewTestBudgetService(t *testing.T, db *sql.DB) *service.BudgetService {
	t.Helper()

	return service.NewBudgetService(
		repository.NewBudgetRepository(db),
		repository.NewAccountRepository(db),
	)
}

// NewTestDashboardService wires a DashboardService against the test database.
func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(
		NewTestPeriodService(t, db),
		repository.NewExpenseRepository(db),
		repository.NewBudgetRepository(db),
	)
}

// NewTestRecurringService wires a RecurringService against the test database.
func NewTestRecurringService(t *testing.T, db *sql.DB) *service.RecurringService {
	t.Helper()

	return service.NewRecurringService(
		repository.NewRecurringRepository(db),
		repository.NewExpenseRepository(db),
		repository.NewAccountRepository(db),
	)
}

package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrAccountNotFound indicates that an account with the given ID does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrExpenseNotFound indicates that an expense with the given ID does not exist.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrBudgetNotFound indicates that a budget with the given ID does not exist.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrTemplateNotFound indicates that a recurring template with the given ID does not exist.
	ErrTemplateNotFound = errors.New("recurring template not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidViewMode indicates a view mode other than calendar or billing.
	ErrInvalidViewMode = errors.New("invalid view mode")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrDuplicateBudget indicates that a budget for the same account and
	// category already exists.
	ErrDuplicateBudget = errors.New("budget for account and category already exists")

	// ErrAccountArchived indicates an operation against an archived account.
	ErrAccountArchived = errors.New("account is archived")

	// ErrInvalidBudgetMode indicates a budget mode other than total or
	// category, or a category budget without a category.
	ErrInvalidBudgetMode = errors.New("invalid budget mode")

	// ErrInvalidBillingDay indicates a recurring billing day outside 1-31.
	ErrInvalidBillingDay = errors.New("billing day must be between 1 and 31")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Settings operation errors
	ErrFailedToRetrieveSettings = errors.New("failed to retrieve settings")
	ErrFailedToUpdateSettings   = errors.New("failed to update settings")

	// Account operation errors
	ErrFailedToRetrieveAccounts = errors.New("failed to retrieve accounts")
	ErrFailedToRetrieveAccount  = errors.New("failed to retrieve account")

	// Expense operation errors
	ErrFailedToRetrieveExpenses = errors.New("failed to retrieve expenses")
	ErrFailedToRetrieveExpense  = errors.New("failed to retrieve expense")

	// Period operation errors
	ErrFailedToResolvePeriod    = errors.New("failed to resolve period")
	ErrFailedToRetrieveMarkers  = errors.New("failed to retrieve period markers")
	ErrFailedToResetPeriod      = errors.New("failed to reset period")
	ErrFailedToRetrieveCycles   = errors.New("failed to retrieve cycle history")
	ErrFailedToBuildDashboard   = errors.New("failed to build dashboard")
	ErrFailedToRetrieveAlerts   = errors.New("failed to retrieve statement alerts")

	// Budget operation errors
	ErrFailedToRetrieveBudgets = errors.New("failed to retrieve budgets")

	// Recurring template operation errors
	ErrFailedToRetrieveTemplates = errors.New("failed to retrieve recurring templates")
	ErrFailedToProcessRecurring  = errors.New("failed to process recurring templates")
)

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// ExpenseService handles expense-related business logic operations.
type ExpenseService struct {
	expenseRepo   *repository.ExpenseRepository
	accountRepo   *repository.AccountRepository
	periodService *PeriodService
}

// NewExpenseService creates a new ExpenseService with the provided dependencies.
func NewExpenseService(
	expenseRepo *repository.ExpenseRepository,
	accountRepo *repository.AccountRepository,
	periodService *PeriodService,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:   expenseRepo,
		accountRepo:   accountRepo,
		periodService: periodService,
	}
}

// GetExpense retrieves a single expense by its ID.
//
// Returns:
//   - apperrors.ErrExpenseNotFound if the expense doesn't exist
func (s *ExpenseService) GetExpense(ctx context.Context, id string) (model.Expense, error) {
	expense, err := s.expenseRepo.GetExpense(ctx, id)
	if err != nil {
		return model.Expense{}, err
	}
	if expense.ID == "" {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	return expense, nil
}

// GetExpensesForActivePeriod retrieves the expenses of the period containing
// ref, resolved for the given account. An empty accountID spans all accounts.
func (s *ExpenseService) GetExpensesForActivePeriod(ctx context.Context, accountID string, ref time.Time) ([]model.Expense, error) {
	active, err := s.periodService.ResolveActive(ctx, accountID, ref)
	if err != nil {
		return nil, err
	}
	return s.expenseRepo.GetExpensesInRange(ctx, active.Period.Start, active.Period.End, accountID)
}

// CreateExpense logs a new expense. A missing timestamp defaults to now;
// the target account must exist and not be archived.
func (s *ExpenseService) CreateExpense(ctx context.Context, req request.CreateExpenseRequest) (model.Expense, error) {
	account, err := s.accountRepo.GetAccount(ctx, req.AccountID)
	if err != nil {
		return model.Expense{}, err
	}
	if account.ID == "" {
		return model.Expense{}, apperrors.ErrAccountNotFound
	}
	if account.IsArchived {
		return model.Expense{}, apperrors.ErrAccountArchived
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		if timestamp, err = repository.ParseTime(req.Timestamp); err != nil {
			return model.Expense{}, err
		}
	}

	expense := model.Expense{
		ID:          uuid.New().String(),
		AccountID:   req.AccountID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Timestamp:   timestamp,
		IsRecurring: req.IsRecurring,
		CreatedAt:   time.Now(),
	}

	if err := s.expenseRepo.InsertExpense(ctx, expense); err != nil {
		return model.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// UpdateExpense applies the non-nil fields of the request to an expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, req request.UpdateExpenseRequest) (model.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return model.Expense{}, err
	}

	if req.AccountID != nil {
		account, err := s.accountRepo.GetAccount(ctx, *req.AccountID)
		if err != nil {
			return model.Expense{}, err
		}
		if account.ID == "" {
			return model.Expense{}, apperrors.ErrAccountNotFound
		}
		expense.AccountID = *req.AccountID
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Timestamp != nil {
		if expense.Timestamp, err = repository.ParseTime(*req.Timestamp); err != nil {
			return model.Expense{}, err
		}
	}

	affected, err := s.expenseRepo.UpdateExpense(ctx, expense)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}
	if affected == 0 {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	return expense, nil
}

// DeleteExpense removes an expense.
//
// Returns:
//   - apperrors.ErrExpenseNotFound if the expense doesn't exist
func (s *ExpenseService) DeleteExpense(ctx context.Context, id string) error {
	affected, err := s.expenseRepo.DeleteExpense(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// ComputeStats summarizes a set of expenses over the period they were
// loaded for. AveragePerDay divides by the days elapsed so far, so a
// period on its first day reports the total itself.
func ComputeStats(expenses []model.Expense, period cycle.Period) model.ExpenseStats {
	stats := model.ExpenseStats{
		Count:      len(expenses),
		Categories: map[string]float64{},
		ByAccount:  map[string]float64{},
	}

	for _, expense := range expenses {
		stats.Total += expense.Amount
		stats.Categories[expense.Category] += expense.Amount
		stats.ByAccount[expense.AccountID] += expense.Amount
		if expense.IsRecurring {
			stats.RecurringTotal += expense.Amount
		}
	}

	if elapsed := period.DaysInCycle - period.DaysRemaining; elapsed > 0 {
		stats.AveragePerDay = stats.Total / float64(elapsed)
	}
	return stats
}

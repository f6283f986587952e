package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// BudgetService handles budget-related business logic operations.
type BudgetService struct {
	budgetRepo  *repository.BudgetRepository
	accountRepo *repository.AccountRepository
}

// NewBudgetService creates a new BudgetService with the provided repository dependencies.
func NewBudgetService(
	budgetRepo *repository.BudgetRepository,
	accountRepo *repository.AccountRepository,
) *BudgetService {
	return &BudgetService{
		budgetRepo:  budgetRepo,
		accountRepo: accountRepo,
	}
}

// GetBudgets retrieves all configured budgets.
func (s *BudgetService) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	return s.budgetRepo.GetBudgets(ctx)
}

// GetBudget retrieves a single budget by its ID.
//
// Returns:
//   - apperrors.ErrBudgetNotFound if the budget doesn't exist
func (s *BudgetService) GetBudget(ctx context.Context, id string) (model.Budget, error) {
	budget, err := s.budgetRepo.GetBudget(ctx, id)
	if err != nil {
		return model.Budget{}, err
	}
	if budget.ID == "" {
		return model.Budget{}, apperrors.ErrBudgetNotFound
	}
	return budget, nil
}

// CreateBudget creates a budget for an account. At most one budget may
// exist per account, mode and category combination.
func (s *BudgetService) CreateBudget(ctx context.Context, req request.CreateBudgetRequest) (model.Budget, error) {
	if req.Mode != model.BudgetModeTotal && req.Mode != model.BudgetModeCategory {
		return model.Budget{}, apperrors.ErrInvalidBudgetMode
	}
	if req.Mode == model.BudgetModeCategory && req.Category == "" {
		return model.Budget{}, apperrors.ErrInvalidBudgetMode
	}

	account, err := s.accountRepo.GetAccount(ctx, req.AccountID)
	if err != nil {
		return model.Budget{}, err
	}
	if account.ID == "" {
		return model.Budget{}, apperrors.ErrAccountNotFound
	}

	count, err := s.budgetRepo.CountMatching(ctx, req.AccountID, req.Mode, req.Category, "")
	if err != nil {
		return model.Budget{}, err
	}
	if count > 0 {
		return model.Budget{}, apperrors.ErrDuplicateBudget
	}

	now := time.Now()
	budget := model.Budget{
		ID:        uuid.New().String(),
		AccountID: req.AccountID,
		Mode:      req.Mode,
		Category:  req.Category,
		Amount:    req.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.budgetRepo.InsertBudget(ctx, budget); err != nil {
		return model.Budget{}, fmt.Errorf("failed to create budget: %w", err)
	}
	return budget, nil
}

// UpdateBudget changes a budget's amount. Mode and category are fixed at
// creation; replace the budget to rescope it.
func (s *BudgetService) UpdateBudget(ctx context.Context, id string, req request.UpdateBudgetRequest) (model.Budget, error) {
	budget, err := s.GetBudget(ctx, id)
	if err != nil {
		return model.Budget{}, err
	}

	if req.Amount != nil {
		budget.Amount = *req.Amount
	}

	affected, err := s.budgetRepo.UpdateBudget(ctx, budget)
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to update budget: %w", err)
	}
	if affected == 0 {
		return model.Budget{}, apperrors.ErrBudgetNotFound
	}

	budget.UpdatedAt = time.Now()
	return budget, nil
}

// DeleteBudget removes a budget.
//
// Returns:
//   - apperrors.ErrBudgetNotFound if the budget doesn't exist
func (s *BudgetService) DeleteBudget(ctx context.Context, id string) error {
	affected, err := s.budgetRepo.DeleteBudget(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBudgetNotFound
	}
	return nil
}

// EvaluateBudgets computes spend against every budget for one period's
// expenses. Spending under 70% of a budget is safe, under 90% a warning,
// anything at or above 90% danger.
func EvaluateBudgets(budgets []model.Budget, stats model.ExpenseStats) []model.BudgetStatus {
	statuses := make([]model.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent := stats.ByAccount[budget.AccountID]
		if budget.Mode == model.BudgetModeCategory {
			spent = stats.Categories[budget.Category]
		}

		var percentage float64
		if budget.Amount > 0 {
			percentage = spent / budget.Amount * 100
		}

		status := model.BudgetStatusSafe
		switch {
		case percentage >= 90:
			status = model.BudgetStatusDanger
		case percentage >= 70:
			status = model.BudgetStatusWarning
		}

		statuses = append(statuses, model.BudgetStatus{
			Budget:     budget,
			Spent:      spent,
			Percentage: percentage,
			Status:     status,
		})
	}
	return statuses
}

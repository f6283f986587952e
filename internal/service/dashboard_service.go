package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// DashboardService assembles the dashboard view: the resolved active
// period, its expenses and statistics, and budget status per budget.
type DashboardService struct {
	periodService *PeriodService
	expenseRepo   *repository.ExpenseRepository
	budgetRepo    *repository.BudgetRepository
}

// NewDashboardService creates a new DashboardService with the provided dependencies.
func NewDashboardService(
	periodService *PeriodService,
	expenseRepo *repository.ExpenseRepository,
	budgetRepo *repository.BudgetRepository,
) *DashboardService {
	return &DashboardService{
		periodService: periodService,
		expenseRepo:   expenseRepo,
		budgetRepo:    budgetRepo,
	}
}

// GetDashboard builds the dashboard for the period containing ref. An
// empty accountID builds the all-accounts view. Expense and budget loads
// run concurrently once the period is resolved.
func (s *DashboardService) GetDashboard(ctx context.Context, accountID string, ref time.Time) (model.Dashboard, error) {
	active, err := s.periodService.ResolveActive(ctx, accountID, ref)
	if err != nil {
		return model.Dashboard{}, err
	}

	var expenses []model.Expense
	var budgets []model.Budget

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.GetExpensesInRange(gctx, active.Period.Start, active.Period.End, accountID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.GetBudgets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}

	stats := ComputeStats(expenses, active.Period)

	return model.Dashboard{
		Period:    active.Period,
		Key:       active.Key,
		ViewMode:  active.ViewMode,
		Expenses:  expenses,
		Stats:     stats,
		Budgets:   EvaluateBudgets(budgets, stats),
		AccountID: accountID,
	}, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// BudgetRepository handles database operations for budgets.
type BudgetRepository struct {
	db *sql.DB
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db *sql.DB) *BudgetRepository {
	return &BudgetRepository{db: db}
}

// GetBudgets retrieves all budgets, total-mode budgets first.
func (r *BudgetRepository) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	query := `
		SELECT id, account_id, mode, category, amount, created_at, updated_at
		FROM budget
		ORDER BY mode, category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	budgets := []model.Budget{}
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// GetBudget retrieves a single budget by ID. A zero-value Budget with no
// error means the budget does not exist.
func (r *BudgetRepository) GetBudget(ctx context.Context, id string) (model.Budget, error) {
	query := `
		SELECT id, account_id, mode, category, amount, created_at, updated_at
		FROM budget
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	budget, err := scanBudget(row)
	if err == sql.ErrNoRows {
		return model.Budget{}, nil
	}
	if err != nil {
		return model.Budget{}, fmt.Errorf("failed to get budget: %w", err)
	}
	return budget, nil
}

// CountMatching returns how many budgets already exist for the given account,
// mode and category, excluding the given ID. Used to reject duplicates.
func (r *BudgetRepository) CountMatching(ctx context.Context, accountID, mode, category, excludeID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM budget
		WHERE account_id = ? AND mode = ? AND category = ? AND id != ?
	`

	var count int
	err := r.db.QueryRowContext(ctx, query, accountID, mode, category, excludeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count budgets: %w", err)
	}
	return count, nil
}

// InsertBudget stores a new budget.
func (r *BudgetRepository) InsertBudget(ctx context.Context, budget model.Budget) error {
	query := `
		INSERT INTO budget (id, account_id, mode, category, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		budget.ID, budget.AccountID, budget.Mode, budget.Category, budget.Amount,
		FormatTime(budget.CreatedAt), FormatTime(budget.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}
	return nil
}

// UpdateBudget updates a budget's amount. Returns the number of rows affected.
func (r *BudgetRepository) UpdateBudget(ctx context.Context, budget model.Budget) (int64, error) {
	query := `
		UPDATE budget
		SET amount = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, budget.Amount, FormatTime(time.Now()), budget.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update budget: %w", err)
	}
	return result.RowsAffected()
}

// DeleteBudget removes a budget. Returns the number of rows affected.
func (r *BudgetRepository) DeleteBudget(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM budget WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete budget: %w", err)
	}
	return result.RowsAffected()
}

func scanBudget(row scanner) (model.Budget, error) {
	var budget model.Budget
	var createdAt, updatedAt string

	err := row.Scan(&budget.ID, &budget.AccountID, &budget.Mode, &budget.Category,
		&budget.Amount, &createdAt, &updatedAt)
	if err != nil {
		return model.Budget{}, err
	}

	if budget.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Budget{}, err
	}
	if budget.UpdatedAt, err = ParseTime(updatedAt); err != nil {
		return model.Budget{}, err
	}
	return budget, nil
}

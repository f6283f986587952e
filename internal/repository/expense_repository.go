package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// ExpenseRepository handles database operations for expenses.
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, account_id, category, description, amount,
	timestamp, is_recurring, recurring_template_id, auto_generated, created_at`

// GetExpensesInRange retrieves expenses whose timestamp falls inside
// [start, end], newest first. An empty accountID matches all accounts.
func (r *ExpenseRepository) GetExpensesInRange(ctx context.Context, start, end time.Time, accountID string) ([]model.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expense
		WHERE timestamp >= ? AND timestamp <= ?
	`
	args := []any{FormatTime(start), FormatTime(end)}

	if accountID != "" {
		query += ` AND account_id = ?`
		args = append(args, accountID)
	}
	query += ` ORDER BY timestamp DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

// GetExpense retrieves a single expense by ID. A zero-value Expense with no
// error means the expense does not exist.
func (r *ExpenseRepository) GetExpense(ctx context.Context, id string) (model.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expense
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return model.Expense{}, nil
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// SumInRange returns the total expense amount inside [start, end].
// An empty accountID matches all accounts.
func (r *ExpenseRepository) SumInRange(ctx context.Context, start, end time.Time, accountID string) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expense
		WHERE timestamp >= ? AND timestamp <= ?
	`
	args := []any{FormatTime(start), FormatTime(end)}

	if accountID != "" {
		query += ` AND account_id = ?`
		args = append(args, accountID)
	}

	var total float64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// SumByCategoryInRange returns per-category expense totals inside [start, end].
func (r *ExpenseRepository) SumByCategoryInRange(ctx context.Context, start, end time.Time) (map[string]float64, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM expense
		WHERE timestamp >= ? AND timestamp <= ?
		GROUP BY category
	`

	rows, err := r.db.QueryContext(ctx, query, FormatTime(start), FormatTime(end))
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses by category: %w", err)
	}
	defer rows.Close()

	totals := map[string]float64{}
	for rows.Next() {
		var category string
		var total float64
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals[category] = total
	}
	return totals, rows.Err()
}

// InsertExpense stores a new expense.
func (r *ExpenseRepository) InsertExpense(ctx context.Context, expense model.Expense) error {
	query := `
		INSERT INTO expense (` + expenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.ID, expense.AccountID, expense.Category, expense.Description,
		expense.Amount, FormatTime(expense.Timestamp), expense.IsRecurring,
		expense.RecurringTemplateID, expense.AutoGenerated,
		FormatTime(expense.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// UpdateExpense updates an expense's mutable fields. Returns the number of
// rows affected so callers can detect a missing expense.
func (r *ExpenseRepository) UpdateExpense(ctx context.Context, expense model.Expense) (int64, error) {
	query := `
		UPDATE expense
		SET account_id = ?, category = ?, description = ?, amount = ?, timestamp = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		expense.AccountID, expense.Category, expense.Description,
		expense.Amount, FormatTime(expense.Timestamp), expense.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update expense: %w", err)
	}
	return result.RowsAffected()
}

// DeleteExpense removes an expense. Returns the number of rows affected.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expense WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expense: %w", err)
	}
	return result.RowsAffected()
}

func scanExpense(row scanner) (model.Expense, error) {
	var expense model.Expense
	var timestamp, createdAt string
	var templateID sql.NullString

	err := row.Scan(&expense.ID, &expense.AccountID, &expense.Category,
		&expense.Description, &expense.Amount, &timestamp,
		&expense.IsRecurring, &templateID, &expense.AutoGenerated, &createdAt)
	if err != nil {
		return model.Expense{}, err
	}

	expense.RecurringTemplateID = templateID.String
	if expense.Timestamp, err = ParseTime(timestamp); err != nil {
		return model.Expense{}, err
	}
	if expense.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Expense{}, err
	}
	return expense, nil
}

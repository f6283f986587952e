package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// RecurringRepository handles database operations for recurring expense templates.
type RecurringRepository struct {
	db *sql.DB
}

// NewRecurringRepository creates a new RecurringRepository.
func NewRecurringRepository(db *sql.DB) *RecurringRepository {
	return &RecurringRepository{db: db}
}

const templateColumns = `id, account_id, category, description, amount,
	billing_day, is_active, last_generated_month, last_generated_year, created_at`

// GetTemplates retrieves recurring templates, optionally only active ones.
func (r *RecurringRepository) GetTemplates(ctx context.Context, activeOnly bool) ([]model.RecurringTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM recurring_template
	`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY billing_day, description`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring templates: %w", err)
	}
	defer rows.Close()

	templates := []model.RecurringTemplate{}
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}
	return templates, rows.Err()
}

// GetTemplate retrieves a single template by ID. A zero-value template with
// no error means the template does not exist.
func (r *RecurringRepository) GetTemplate(ctx context.Context, id string) (model.RecurringTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM recurring_template
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	template, err := scanTemplate(row)
	if err == sql.ErrNoRows {
		return model.RecurringTemplate{}, nil
	}
	if err != nil {
		return model.RecurringTemplate{}, fmt.Errorf("failed to get recurring template: %w", err)
	}
	return template, nil
}

// InsertTemplate stores a new recurring template.
func (r *RecurringRepository) InsertTemplate(ctx context.Context, template model.RecurringTemplate) error {
	query := `
		INSERT INTO recurring_template (` + templateColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		template.ID, template.AccountID, template.Category, template.Description,
		template.Amount, template.BillingDay, template.IsActive,
		template.LastGeneratedMonth, template.LastGeneratedYear,
		FormatTime(template.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert recurring template: %w", err)
	}
	return nil
}

// UpdateTemplate updates a template's mutable fields. Returns the number of
// rows affected so callers can detect a missing template.
func (r *RecurringRepository) UpdateTemplate(ctx context.Context, template model.RecurringTemplate) (int64, error) {
	query := `
		UPDATE recurring_template
		SET account_id = ?, category = ?, description = ?, amount = ?,
			billing_day = ?, is_active = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		template.AccountID, template.Category, template.Description,
		template.Amount, template.BillingDay, template.IsActive, template.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update recurring template: %w", err)
	}
	return result.RowsAffected()
}

// MarkGenerated records that a template produced its expense for the given
// month and year.
func (r *RecurringRepository) MarkGenerated(ctx context.Context, id string, month time.Month, year int) error {
	query := `
		UPDATE recurring_template
		SET last_generated_month = ?, last_generated_year = ?
		WHERE id = ?
	`

	_, err := r.db.ExecContext(ctx, query, int(month), year, id)
	if err != nil {
		return fmt.Errorf("failed to mark recurring template generated: %w", err)
	}
	return nil
}

// DeleteTemplate removes a template. Expenses generated from it keep their
// template reference. Returns the number of rows affected.
func (r *RecurringRepository) DeleteTemplate(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM recurring_template WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete recurring template: %w", err)
	}
	return result.RowsAffected()
}

func scanTemplate(row scanner) (model.RecurringTemplate, error) {
	var template model.RecurringTemplate
	var createdAt string

	err := row.Scan(&template.ID, &template.AccountID, &template.Category,
		&template.Description, &template.Amount, &template.BillingDay,
		&template.IsActive, &template.LastGeneratedMonth,
		&template.LastGeneratedYear, &createdAt)
	if err != nil {
		return model.RecurringTemplate{}, err
	}

	if template.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.RecurringTemplate{}, err
	}
	return template, nil
}

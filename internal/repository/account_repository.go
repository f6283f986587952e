package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// AccountRepository handles database operations for accounts.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetAccounts retrieves accounts, excluding archived ones unless the filter
// asks for them. Results are ordered by name.
func (r *AccountRepository) GetAccounts(ctx context.Context, filter model.AccountFilter) ([]model.Account, error) {
	query := `
		SELECT id, name, anchor_day, is_archived, created_at
		FROM account
	`
	if !filter.IncludeArchived {
		query += ` WHERE is_archived = 0`
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// GetAccount retrieves a single account by ID. A zero-value Account with no
// error means the account does not exist.
func (r *AccountRepository) GetAccount(ctx context.Context, id string) (model.Account, error) {
	query := `
		SELECT id, name, anchor_day, is_archived, created_at
		FROM account
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	account, err := scanAccount(row)
	if err == sql.ErrNoRows {
		return model.Account{}, nil
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// GetAnchorDays returns the configured billing anchor day per account ID.
// Accounts without an anchor day are omitted.
func (r *AccountRepository) GetAnchorDays(ctx context.Context) (map[string]int, error) {
	query := `
		SELECT id, anchor_day
		FROM account
		WHERE anchor_day > 0 AND is_archived = 0
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query anchor days: %w", err)
	}
	defer rows.Close()

	anchors := map[string]int{}
	for rows.Next() {
		var id string
		var day int
		if err := rows.Scan(&id, &day); err != nil {
			return nil, fmt.Errorf("failed to scan anchor day: %w", err)
		}
		anchors[id] = day
	}
	return anchors, rows.Err()
}

// InsertAccount stores a new account.
func (r *AccountRepository) InsertAccount(ctx context.Context, account model.Account) error {
	query := `
		INSERT INTO account (id, name, anchor_day, is_archived, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.Name, account.AnchorDay, account.IsArchived,
		FormatTime(account.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}
	return nil
}

// UpdateAccount updates an account's mutable fields. Returns the number of
// rows affected so callers can detect a missing account.
func (r *AccountRepository) UpdateAccount(ctx context.Context, account model.Account) (int64, error) {
	query := `
		UPDATE account
		SET name = ?, anchor_day = ?, is_archived = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		account.Name, account.AnchorDay, account.IsArchived, account.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to update account: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (model.Account, error) {
	var account model.Account
	var createdAt string

	err := row.Scan(&account.ID, &account.Name, &account.AnchorDay,
		&account.IsArchived, &createdAt)
	if err != nil {
		return model.Account{}, err
	}

	if account.CreatedAt, err = ParseTime(createdAt); err != nil {
		return model.Account{}, err
	}
	return account, nil
}

package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
)

// AccountBuilder provides a fluent interface for creating test accounts.
//
// Example usage:
//
//	// Simple creation with defaults
//	account := testutil.NewAccount().Build(t, db)
//
//	// Customized account
//	account := testutil.NewAccount().
//	    WithName("Visa").
//	    WithAnchorDay(15).
//	    Build(t, db)
type AccountBuilder struct {
	ID         string
	Name       string
	AnchorDay  int
	IsArchived bool
}

// NewAccount creates an AccountBuilder with sensible defaults.
func NewAccount() *AccountBuilder {
	return &AccountBuilder{
		ID:   MakeID(),
		Name: "Test Account",
	}
}

// WithID sets a custom ID.
func (b *AccountBuilder) WithID(id string) *AccountBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *AccountBuilder) WithName(name string) *AccountBuilder {
	b.Name = name
	return b
}

// WithAnchorDay configures a billing anchor day.
func (b *AccountBuilder) WithAnchorDay(day int) *AccountBuilder {
	b.AnchorDay = day
	return b
}

// Archived marks the account archived.
func (b *AccountBuilder) Archived() *AccountBuilder {
	b.IsArchived = true
	return b
}

// Build inserts the account and returns it.
func (b *AccountBuilder) Build(t *testing.T, db *sql.DB) model.Account {
	t.Helper()

	account := model.Account{
		ID:         b.ID,
		Name:       b.Name,
		AnchorDay:  b.AnchorDay,
		IsArchived: b.IsArchived,
		CreatedAt:  time.Now().UTC(),
	}

	repo := repository.NewAccountRepository(db)
	if err := repo.InsertAccount(context.Background(), account); err != nil {
		t.Fatalf("Failed to insert test account: %v", err)
	}
	return account
}

// ExpenseBuilder provides a fluent interface for creating test expenses.
type ExpenseBuilder struct {
	ID          string
	AccountID   string
	Category    string
	Description string
	Amount      float64
	Timestamp   time.Time
	IsRecurring bool
	TemplateID  string
}

// NewExpense creates an ExpenseBuilder with sensible defaults. The
// account ID must be supplied via WithAccount.
func NewExpense() *ExpenseBuilder {
	return &ExpenseBuilder{
		ID:        MakeID(),
		Category:  "groceries",
		Amount:    25.50,
		Timestamp: time.Now().UTC(),
	}
}

// WithAccount targets the expense at an account.
func (b *ExpenseBuilder) WithAccount(accountID string) *ExpenseBuilder {
	b.AccountID = accountID
	return b
}

// WithCategory sets a custom category.
func (b *ExpenseBuilder) WithCategory(category string) *ExpenseBuilder {
	b.Category = category
	return b
}

// WithAmount sets a custom amount.
func (b *ExpenseBuilder) WithAmount(amount float64) *ExpenseBuilder {
	b.Amount = amount
	return b
}

// At sets the expense timestamp.
func (b *ExpenseBuilder) At(timestamp time.Time) *ExpenseBuilder {
	b.Timestamp = timestamp
	return b
}

// Recurring marks the expense as generated from a template.
func (b *ExpenseBuilder) Recurring(templateID string) *ExpenseBuilder {
	b.IsRecurring = true
	b.TemplateID = templateID
	return b
}

// Build inserts the expense and returns it.
func (b *ExpenseBuilder) Build(t *testing.T, db *sql.DB) model.Expense {
	t.Helper()

	expense := model.Expense{
		ID:                  b.ID,
		AccountID:           b.AccountID,
		Category:            b.Category,
		Description:         b.Description,
		Amount:              b.Amount,
		Timestamp:           b.Timestamp,
		IsRecurring:         b.IsRecurring,
		RecurringTemplateID: b.TemplateID,
		AutoGenerated:       b.TemplateID != "",
		CreatedAt:           time.Now().UTC(),
	}

	repo := repository.NewExpenseRepository(db)
	if err := repo.InsertExpense(context.Background(), expense); err != nil {
		t.Fatalf("Failed to insert test expense: %v", err)
	}
	return expense
}

// MarkerBuilder provides a fluent interface for creating test period markers.
type MarkerBuilder struct {
	ID           string
	Timestamp    time.Time
	TotalAtReset float64
}

// NewMarker creates a MarkerBuilder with sensible defaults.
func NewMarker() *MarkerBuilder {
	return &MarkerBuilder{
		ID:        MakeID(),
		Timestamp: time.Now().UTC(),
	}
}

// At sets the marker instant.
func (b *MarkerBuilder) At(timestamp time.Time) *MarkerBuilder {
	b.Timestamp = timestamp
	return b
}

// WithTotal records the total of the closed period.
func (b *MarkerBuilder) WithTotal(total float64) *MarkerBuilder {
	b.TotalAtReset = total
	return b
}

// Build inserts the marker and returns it.
func (b *MarkerBuilder) Build(t *testing.T, db *sql.DB) model.PeriodMarker {
	t.Helper()

	marker := model.PeriodMarker{
		ID:           b.ID,
		Timestamp:    b.Timestamp,
		TotalAtReset: b.TotalAtReset,
		CreatedAt:    time.Now().UTC(),
	}

	repo := repository.NewMarkerRepository(db)
	if err := repo.InsertMarker(context.Background(), marker); err != nil {
		t.Fatalf("Failed to insert test marker: %v", err)
	}
	return marker
}

// BudgetBuilder provides a fluent interface for creating test budgets.
type BudgetBuilder struct {
	ID        string
	AccountID string
	Mode      string
	Category  string
	Amount    float64
}

// NewBudget creates a BudgetBuilder defaulting to a total budget. The
// account ID must be supplied via WithAccount.
func NewBudget() *BudgetBuilder {
	return &BudgetBuilder{
		ID:     MakeID(),
		Mode:   model.BudgetModeTotal,
		Amount: 1000,
	}
}

// WithAccount targets the budget at an account.
func (b *BudgetBuilder) WithAccount(accountID string) *BudgetBuilder {
	b.AccountID = accountID
	return b
}

// ForCategory turns the budget into a category budget.
func (b *BudgetBuilder) ForCategory(category string) *BudgetBuilder {
	b.Mode = model.BudgetModeCategory
	b.Category = category
	return b
}

// WithAmount sets a custom amount.
func (b *BudgetBuilder) WithAmount(amount float64) *BudgetBuilder {
	b.Amount = amount
	return b
}

// Build inserts the budget and returns it.
func (b *BudgetBuilder) Build(t *testing.T, db *sql.DB) model.Budget {
	t.Helper()

	now := time.Now().UTC()
	budget := model.Budget{
		ID:        b.ID,
		AccountID: b.AccountID,
		Mode:      b.Mode,
		Category:  b.Category,
		Amount:    b.Amount,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo := repository.NewBudgetRepository(db)
	if err := repo.InsertBudget(context.Background(), budget); err != nil {
		t.Fatalf("Failed to insert test budget: %v", err)
	}
	return budget
}

// TemplateBuilder provides a fluent interface for creating test recurring templates.
type TemplateBuilder struct {
	ID            string
	AccountID     string
	Category      string
	Description   string
	Amount        float64
	BillingDay    int
	IsActive      bool
	GeneratedWhen *time.Time
}

// NewTemplate creates a TemplateBuilder with sensible defaults. The
// account ID must be supplied via WithAccount.
func NewTemplate() *TemplateBuilder {
	return &TemplateBuilder{
		ID:         MakeID(),
		Category:   "subscriptions",
		Amount:     9.99,
		BillingDay: 1,
		IsActive:   true,
	}
}

// WithAccount targets the template at an account.
func (b *TemplateBuilder) WithAccount(accountID string) *TemplateBuilder {
	b.AccountID = accountID
	return b
}

// WithBillingDay sets the day of month the template generates on.
func (b *TemplateBuilder) WithBillingDay(day int) *TemplateBuilder {
	b.BillingDay = day
	return b
}

// WithAmount sets a custom amount.
func (b *TemplateBuilder) WithAmount(amount float64) *TemplateBuilder {
	b.Amount = amount
	return b
}

// Inactive disables the template.
func (b *TemplateBuilder) Inactive() *TemplateBuilder {
	b.IsActive = false
	return b
}

// GeneratedAt records that the template already generated in the month
// containing the given time.
func (b *TemplateBuilder) GeneratedAt(when time.Time) *TemplateBuilder {
	b.GeneratedWhen = &when
	return b
}

// Build inserts the template and returns it.
func (b *TemplateBuilder) Build(t *testing.T, db *sql.DB) model.RecurringTemplate {
	t.Helper()

	template := model.RecurringTemplate{
		ID:          b.ID,
		AccountID:   b.AccountID,
		Category:    b.Category,
		Description: b.Description,
		Amount:      b.Amount,
		BillingDay:  b.BillingDay,
		IsActive:    b.IsActive,
		CreatedAt:   time.Now().UTC(),
	}
	if b.GeneratedWhen != nil {
		template.LastGeneratedMonth = int(b.GeneratedWhen.Month())
		template.LastGeneratedYear = b.GeneratedWhen.Year()
	}

	repo := repository.NewRecurringRepository(db)
	if err := repo.InsertTemplate(context.Background(), template); err != nil {
		t.Fatalf("Failed to insert test template: %v", err)
	}
	return template
}

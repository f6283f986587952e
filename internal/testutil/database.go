package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Settings table
		CREATE TABLE settings (
			id TEXT PRIMARY KEY,
			view_mode TEXT NOT NULL DEFAULT 'calendar',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		-- Account table
		CREATE TABLE account (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			anchor_day INTEGER NOT NULL DEFAULT 0,
			is_archived INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		-- Expense table
		CREATE TABLE expense (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES account(id),
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			amount REAL NOT NULL,
			timestamp TEXT NOT NULL,
			is_recurring INTEGER NOT NULL DEFAULT 0,
			recurring_template_id TEXT,
			auto_generated INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_expense_timestamp ON expense(timestamp);
		CREATE INDEX idx_expense_account ON expense(account_id);

		-- Period marker table
		CREATE TABLE period_marker (
			id TEXT PRIMARY KEY,
			timestamp TEXT NOT NULL,
			total_at_reset REAL NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);

		CREATE INDEX idx_period_marker_timestamp ON period_marker(timestamp);

		-- Budget table
		CREATE TABLE budget (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES account(id),
			mode TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			amount REAL NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);

		CREATE UNIQUE INDEX idx_budget_scope ON budget(account_id, mode, category);

		-- Recurring template table
		CREATE TABLE recurring_template (
			id TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES account(id),
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			amount REAL NOT NULL,
			billing_day INTEGER NOT NULL,
			is_active INTEGER NOT NULL DEFAULT 1,
			last_generated_month INTEGER NOT NULL DEFAULT 0,
			last_generated_year INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}

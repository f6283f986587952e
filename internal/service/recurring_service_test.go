package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/testutil"
)

// TestRecurringService_ProcessDue tests monthly expense generation.
//
// WHY: Generation must fire exactly once per template per month, honor
// the billing day, and clamp to short months, or users see duplicate or
// missing recurring expenses.
func TestRecurringService_ProcessDue(t *testing.T) {
	ctx := context.Background()

	t.Run("generates once the billing day is reached", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)

		account := testutil.NewAccount().Build(t, db)
		template := testutil.NewTemplate().WithAccount(account.ID).WithBillingDay(10).WithAmount(15).Build(t, db)

		// Before the billing day: nothing.
		generated, err := svc.ProcessDue(ctx, date(2024, time.March, 9))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 0 {
			t.Fatalf("Expected no expenses before billing day, got %d", len(generated))
		}

		// On the billing day: one expense.
		generated, err = svc.ProcessDue(ctx, date(2024, time.March, 10))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 1 {
			t.Fatalf("Expected 1 expense, got %d", len(generated))
		}
		if generated[0].RecurringTemplateID != template.ID {
			t.Errorf("Expected template reference %s, got %s", template.ID, generated[0].RecurringTemplateID)
		}
		if !generated[0].AutoGenerated || !generated[0].IsRecurring {
			t.Error("Expected generated expense to be marked recurring and auto-generated")
		}
		if generated[0].Amount != 15 {
			t.Errorf("Expected amount 15, got %v", generated[0].Amount)
		}

		// Running again the same month is a no-op.
		generated, err = svc.ProcessDue(ctx, date(2024, time.March, 20))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 0 {
			t.Fatalf("Expected no duplicate generation, got %d", len(generated))
		}

		// A new month generates again.
		generated, err = svc.ProcessDue(ctx, date(2024, time.April, 10))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 1 {
			t.Fatalf("Expected generation in the new month, got %d", len(generated))
		}
	})

	t.Run("dates a late catch-up run on the billing day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).WithBillingDay(10).Build(t, db)

		// First run of the month happens ten days late.
		generated, err := svc.ProcessDue(ctx, date(2024, time.March, 20))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 1 {
			t.Fatalf("Expected 1 expense, got %d", len(generated))
		}
		if want := date(2024, time.March, 10); !generated[0].Timestamp.Equal(want) {
			t.Errorf("Expected expense dated %v, got %v", want, generated[0].Timestamp)
		}
	})

	t.Run("clamps billing day 31 in short months", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).WithBillingDay(31).Build(t, db)

		// February 2024 has 29 days; day 31 clamps to the 29th.
		generated, err := svc.ProcessDue(ctx, date(2024, time.February, 29))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 1 {
			t.Fatalf("Expected generation on clamped day, got %d", len(generated))
		}
		if want := date(2024, time.February, 29); !generated[0].Timestamp.Equal(want) {
			t.Errorf("Expected expense dated %v, got %v", want, generated[0].Timestamp)
		}
	})

	t.Run("skips inactive and already generated templates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).WithBillingDay(1).Inactive().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).WithBillingDay(1).
			GeneratedAt(date(2024, time.March, 1)).Build(t, db)

		generated, err := svc.ProcessDue(ctx, date(2024, time.March, 15))
		if err != nil {
			t.Fatalf("ProcessDue failed: %v", err)
		}
		if len(generated) != 0 {
			t.Fatalf("Expected no generation, got %d", len(generated))
		}
	})
}

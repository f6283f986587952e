package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/handlers"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/testutil"
)

// TestDashboardHandler_Dashboard tests the GET /api/dashboard endpoint.
//
// WHY: The dashboard is the app's landing view; its payload combines
// period resolution, expense statistics and budget bands, so a regression
// here touches everything at once.
func TestDashboardHandler_Dashboard(t *testing.T) {
	t.Run("GET /api/dashboard assembles period, stats and budgets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDashboardService(t, db)
		handler := handlers.NewDashboardHandler(svc)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewExpense().WithAccount(account.ID).WithCategory("groceries").WithAmount(60).
			At(time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewExpense().WithAccount(account.ID).WithCategory("dining").WithAmount(20).
			At(time.Date(2024, time.March, 8, 19, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewBudget().WithAccount(account.ID).WithAmount(100).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/",
			map[string]string{"date": "2024-03-10"})
		w := httptest.NewRecorder()

		handler.Dashboard(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var dashboard model.Dashboard
		if err := json.NewDecoder(w.Body).Decode(&dashboard); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if dashboard.Key != "2024-03" {
			t.Errorf("Expected key 2024-03, got %s", dashboard.Key)
		}
		if len(dashboard.Expenses) != 2 {
			t.Errorf("Expected 2 expenses, got %d", len(dashboard.Expenses))
		}
		if dashboard.Stats.Total != 80 {
			t.Errorf("Expected total 80, got %v", dashboard.Stats.Total)
		}
		if len(dashboard.Budgets) != 1 {
			t.Fatalf("Expected 1 budget status, got %d", len(dashboard.Budgets))
		}

		// 80 of 100 spent: warning band.
		status := dashboard.Budgets[0]
		if status.Spent != 80 {
			t.Errorf("Expected spent 80, got %v", status.Spent)
		}
		if status.Status != model.BudgetStatusWarning {
			t.Errorf("Expected warning status, got %s", status.Status)
		}
	})

	t.Run("GET /api/dashboard reports danger at 90 percent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDashboardService(t, db)
		handler := handlers.NewDashboardHandler(svc)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewExpense().WithAccount(account.ID).WithCategory("dining").WithAmount(95).
			At(time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)).Build(t, db)
		testutil.NewBudget().WithAccount(account.ID).ForCategory("dining").WithAmount(100).Build(t, db)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard/",
			map[string]string{"date": "2024-03-10"})
		w := httptest.NewRecorder()

		handler.Dashboard(w, req)

		var dashboard model.Dashboard
		if err := json.NewDecoder(w.Body).Decode(&dashboard); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(dashboard.Budgets) != 1 {
			t.Fatalf("Expected 1 budget status, got %d", len(dashboard.Budgets))
		}
		if dashboard.Budgets[0].Status != model.BudgetStatusDanger {
			t.Errorf("Expected danger status, got %s", dashboard.Budgets[0].Status)
		}
	})
}

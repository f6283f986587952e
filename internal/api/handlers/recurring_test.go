package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/handlers"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/testutil"
)

func TestRecurringHandler_Templates(t *testing.T) {
	t.Run("GET /api/recurring hides inactive templates by default", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).Inactive().Build(t, db)

		req := httptest.NewRequest("GET", "/api/recurring", nil)
		w := httptest.NewRecorder()

		handler.Templates(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var templates []model.RecurringTemplate
		if err := json.NewDecoder(w.Body).Decode(&templates); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(templates) != 1 {
			t.Errorf("Expected 1 active template, got %d", len(templates))
		}
	})

	t.Run("GET /api/recurring?all=true includes inactive templates", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).Inactive().Build(t, db)

		req := httptest.NewRequest("GET", "/api/recurring?all=true", nil)
		w := httptest.NewRecorder()

		handler.Templates(w, req)

		var templates []model.RecurringTemplate
		if err := json.NewDecoder(w.Body).Decode(&templates); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(templates) != 2 {
			t.Errorf("Expected 2 templates, got %d", len(templates))
		}
	})
}

func TestRecurringHandler_CreateTemplate(t *testing.T) {
	t.Run("POST /api/recurring creates a template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		account := testutil.NewAccount().Build(t, db)

		body := `{"accountId": "` + account.ID + `", "category": "subscriptions", "description": "Streaming", "amount": 15.99, "billingDay": 5}`
		req := httptest.NewRequest("POST", "/api/recurring", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateTemplate(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var template model.RecurringTemplate
		if err := json.NewDecoder(w.Body).Decode(&template); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if template.BillingDay != 5 {
			t.Errorf("Expected billing day 5, got %d", template.BillingDay)
		}
		if !template.IsActive {
			t.Error("Expected new template to be active")
		}
	})

	t.Run("POST /api/recurring returns 400 for billing day 0", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		account := testutil.NewAccount().Build(t, db)

		body := `{"accountId": "` + account.ID + `", "category": "subscriptions", "amount": 10, "billingDay": 0}`
		req := httptest.NewRequest("POST", "/api/recurring", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateTemplate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestRecurringHandler_UpdateTemplate(t *testing.T) {
	t.Run("PUT /api/recurring/{uuid} deactivates a template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		account := testutil.NewAccount().Build(t, db)
		template := testutil.NewTemplate().WithAccount(account.ID).Build(t, db)

		req := requestWithBody("PUT", "/api/recurring/"+template.ID, `{"isActive": false}`, template.ID)
		w := httptest.NewRecorder()

		handler.UpdateTemplate(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated model.RecurringTemplate
		if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if updated.IsActive {
			t.Error("Expected template to be inactive")
		}
	})

	t.Run("PUT /api/recurring/{uuid} returns 404 for unknown template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		id := testutil.MakeID()
		req := requestWithBody("PUT", "/api/recurring/"+id, `{"amount": 20}`, id)
		w := httptest.NewRecorder()

		handler.UpdateTemplate(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestRecurringHandler_ProcessTemplates(t *testing.T) {
	t.Run("POST /api/recurring/process generates due expenses", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestRecurringService(t, db)
		handler := handlers.NewRecurringHandler(svc)

		account := testutil.NewAccount().Build(t, db)
		testutil.NewTemplate().WithAccount(account.ID).WithBillingDay(1).WithAmount(9.99).Build(t, db)

		req := httptest.NewRequest("POST", "/api/recurring/process", nil)
		w := httptest.NewRecorder()

		handler.ProcessTemplates(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var generated []model.Expense
		if err := json.NewDecoder(w.Body).Decode(&generated); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(generated) != 1 {
			t.Fatalf("Expected 1 generated expense, got %d", len(generated))
		}
		if generated[0].Amount != 9.99 {
			t.Errorf("Expected amount 9.99, got %f", generated[0].Amount)
		}
		if !generated[0].AutoGenerated {
			t.Error("Expected generated expense to be flagged auto-generated")
		}

		now := time.Now().UTC()
		if generated[0].Timestamp.Month() != now.Month() || generated[0].Timestamp.Year() != now.Year() {
			t.Errorf("Expected expense dated in the current month, got %v", generated[0].Timestamp)
		}
	})
}

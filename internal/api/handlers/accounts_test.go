package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/handlers"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/testutil"
)

// requestWithBody builds a request with a JSON body and a chi uuid URL parameter.
func requestWithBody(method, path, body, id string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("uuid", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAccountHandler_Accounts(t *testing.T) {
	t.Run("GET /api/account returns 200 with empty array", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		handler := handlers.NewAccountHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/account/", nil)
		w := httptest.NewRecorder()

		handler.Accounts(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var accounts []model.Account
		if err := json.NewDecoder(w.Body).Decode(&accounts); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(accounts) != 0 {
			t.Errorf("Expected empty array, got %d items", len(accounts))
		}
	})

	t.Run("GET /api/account hides archived accounts by default", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		handler := handlers.NewAccountHandler(svc)

		active := testutil.NewAccount().WithName("Visa").Build(t, db)
		testutil.NewAccount().WithName("Old Card").Archived().Build(t, db)

		req := httptest.NewRequest(http.MethodGet, "/api/account/", nil)
		w := httptest.NewRecorder()
		handler.Accounts(w, req)

		var accounts []model.Account
		if err := json.NewDecoder(w.Body).Decode(&accounts); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(accounts) != 1 || accounts[0].ID != active.ID {
			t.Errorf("Expected only the active account, got %d items", len(accounts))
		}

		// archived=true includes both
		req = testutil.NewRequestWithQueryParams(http.MethodGet, "/api/account/", map[string]string{"archived": "true"})
		w = httptest.NewRecorder()
		handler.Accounts(w, req)

		if err := json.NewDecoder(w.Body).Decode(&accounts); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(accounts) != 2 {
			t.Errorf("Expected 2 accounts with archived=true, got %d", len(accounts))
		}
	})
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	t.Run("POST /api/account creates and returns 201", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		handler := handlers.NewAccountHandler(svc)

		body := strings.NewReader(`{"name":"Visa","anchorDay":15}`)
		req := httptest.NewRequest(http.MethodPost, "/api/account/", body)
		w := httptest.NewRecorder()

		handler.CreateAccount(w, req)

		if w.Code != http.StatusCreated {
			t.Errorf("Expected status 201, got %d", w.Code)
		}

		var account model.Account
		if err := json.NewDecoder(w.Body).Decode(&account); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if account.Name != "Visa" || account.AnchorDay != 15 {
			t.Errorf("Unexpected account: %+v", account)
		}
	})

	t.Run("POST /api/account rejects bad anchor day", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		handler := handlers.NewAccountHandler(svc)

		body := strings.NewReader(`{"name":"Visa","anchorDay":32}`)
		req := httptest.NewRequest(http.MethodPost, "/api/account/", body)
		w := httptest.NewRecorder()

		handler.CreateAccount(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestAccountHandler_UpdateAccount(t *testing.T) {
	t.Run("PUT /api/account/{uuid} clears the anchor", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		handler := handlers.NewAccountHandler(svc)

		account := testutil.NewAccount().WithAnchorDay(15).Build(t, db)

		req := requestWithBody(http.MethodPut, "/api/account/"+account.ID, `{"anchorDay":0}`, account.ID)
		w := httptest.NewRecorder()

		handler.UpdateAccount(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var updated model.Account
		if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if updated.AnchorDay != 0 {
			t.Errorf("Expected anchor cleared, got %d", updated.AnchorDay)
		}
	})

	t.Run("PUT /api/account/{uuid} returns 404 for unknown account", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountService(t, db)
		handler := handlers.NewAccountHandler(svc)

		id := testutil.MakeID()
		req := requestWithBody(http.MethodPut, "/api/account/"+id, `{"name":"X"}`, id)
		w := httptest.NewRecorder()

		handler.UpdateAccount(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

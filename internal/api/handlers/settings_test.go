package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/handlers"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/testutil"
)

// TestSettingsHandler tests the GET and PUT /api/settings endpoints.
//
// WHY: The view mode drives every period resolution, and the anchor-day
// snapshot is the frontend's only way to know which accounts run billing
// cycles. The API contract has to hold from first boot onward.
func TestSettingsHandler(t *testing.T) {
	t.Run("GET /api/settings seeds calendar defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)
		handler := handlers.NewSettingsHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/settings/", nil)
		w := httptest.NewRecorder()

		handler.GetSettings(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var view model.SettingsView
		if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if string(view.ViewMode) != "calendar" {
			t.Errorf("Expected calendar default, got %s", view.ViewMode)
		}
	})

	t.Run("GET /api/settings includes account anchors", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)
		handler := handlers.NewSettingsHandler(svc)

		account := testutil.NewAccount().WithAnchorDay(22).Build(t, db)
		testutil.NewAccount().Build(t, db) // no anchor, omitted

		req := httptest.NewRequest(http.MethodGet, "/api/settings/", nil)
		w := httptest.NewRecorder()

		handler.GetSettings(w, req)

		var view model.SettingsView
		if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(view.AnchorDays) != 1 {
			t.Fatalf("Expected 1 anchor, got %d", len(view.AnchorDays))
		}
		if view.AnchorDays[account.ID] != 22 {
			t.Errorf("Expected anchor 22, got %d", view.AnchorDays[account.ID])
		}
	})

	t.Run("PUT /api/settings switches view mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)
		handler := handlers.NewSettingsHandler(svc)

		body := strings.NewReader(`{"viewMode":"billing"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/settings/", body)
		w := httptest.NewRecorder()

		handler.UpdateSettings(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		var settings model.Settings
		if err := json.NewDecoder(w.Body).Decode(&settings); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if string(settings.ViewMode) != "billing" {
			t.Errorf("Expected billing, got %s", settings.ViewMode)
		}
	})

	t.Run("PUT then GET round-trips the stored mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)
		handler := handlers.NewSettingsHandler(svc)

		put := httptest.NewRequest(http.MethodPut, "/api/settings/", strings.NewReader(`{"viewMode":"billing"}`))
		handler.UpdateSettings(httptest.NewRecorder(), put)

		get := httptest.NewRequest(http.MethodGet, "/api/settings/", nil)
		w := httptest.NewRecorder()
		handler.GetSettings(w, get)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200 after update, got %d: %s", w.Code, w.Body.String())
		}

		var view model.SettingsView
		if err := json.NewDecoder(w.Body).Decode(&view); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if string(view.ViewMode) != "billing" {
			t.Errorf("Expected stored mode billing, got %s", view.ViewMode)
		}
	})

	t.Run("PUT /api/settings rejects unknown mode", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSettingsService(t, db)
		handler := handlers.NewSettingsHandler(svc)

		body := strings.NewReader(`{"viewMode":"weekly"}`)
		req := httptest.NewRequest(http.MethodPut, "/api/settings/", body)
		w := httptest.NewRecorder()

		handler.UpdateSettings(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

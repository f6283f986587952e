package handlers

import (
	"net/http"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
	"github.com/akaur/Budget-Buddy-Backend/internal/validation"
)

// SettingsHandler handles HTTP requests for settings endpoints.
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler with the provided service dependency.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetSettings handles GET requests to retrieve the settings snapshot:
// the view mode plus the anchor day of every active account.
//
// Endpoint: GET /api/settings
// Response: 200 OK with SettingsView
// Error: 500 Internal Server Error if retrieval fails
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	view, err := h.settingsService.GetSettingsView(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, view)
}

// UpdateSettings handles PUT requests to switch the view mode.
//
// Endpoint: PUT /api/settings
// Request Body: UpdateSettingsRequest (viewMode)
// Response: 200 OK with updated Settings
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if update fails
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpdateSettingsRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateSettings(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	settings, err := h.settingsService.UpdateViewMode(r.Context(), req.ViewMode)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToUpdateSettings.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, settings)
}

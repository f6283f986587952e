package handlers

import (
	"net/http"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
)

// DashboardHandler handles HTTP requests for the dashboard endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the provided service dependency.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Dashboard handles GET requests to build the dashboard view: the
// resolved active period, its expenses and statistics, and budget status.
//
// Endpoint: GET /api/dashboard?account={uuid}&date=YYYY-MM-DD
// Response: 200 OK with Dashboard
// Error: 400 Bad Request if the date parameter is malformed
// Error: 500 Internal Server Error if assembly fails
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ref, err := refTime(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(r.Context(), r.URL.Query().Get("account"), ref)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildDashboard.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, dashboard)
}

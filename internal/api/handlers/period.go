package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
)

// PeriodHandler handles HTTP requests for period resolution, history,
// reset and statement alert endpoints.
type PeriodHandler struct {
	periodService *service.PeriodService
}

// NewPeriodHandler creates a new PeriodHandler with the provided service dependency.
func NewPeriodHandler(periodService *service.PeriodService) *PeriodHandler {
	return &PeriodHandler{
		periodService: periodService,
	}
}

// ActivePeriod handles GET requests to resolve the period containing the
// given date for the optional account.
//
// Endpoint: GET /api/period?account={uuid}&date=YYYY-MM-DD
// Response: 200 OK with ActivePeriod
// Error: 400 Bad Request if the date parameter is malformed
// Error: 500 Internal Server Error if resolution fails
func (h *PeriodHandler) ActivePeriod(w http.ResponseWriter, r *http.Request) {
	ref, err := refTime(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	active, err := h.periodService.ResolveActive(r.Context(), r.URL.Query().Get("account"), ref)
	if err != nil {
		if errors.Is(err, cycle.ErrInvalidAnchorDay) {
			response.RespondError(w, http.StatusBadRequest, cycle.ErrInvalidAnchorDay.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToResolvePeriod.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, active)
}

// Cycles handles GET requests to enumerate recent periods, newest first.
// The count query parameter caps how far back to go, defaulting to 12.
//
// Endpoint: GET /api/cycles?account={uuid}&count=12&date=YYYY-MM-DD
// Response: 200 OK with array of HistoricalPeriod
// Error: 400 Bad Request if a query parameter is malformed
// Error: 500 Internal Server Error if enumeration fails
func (h *PeriodHandler) Cycles(w http.ResponseWriter, r *http.Request) {
	ref, err := refTime(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	count := 12
	if value := r.URL.Query().Get("count"); value != "" {
		if count, err = strconv.Atoi(value); err != nil || count < 1 {
			response.RespondError(w, http.StatusBadRequest, "count must be a positive integer", "")
			return
		}
	}

	periods, err := h.periodService.History(r.Context(), r.URL.Query().Get("account"), ref, count)
	if err != nil {
		if errors.Is(err, cycle.ErrInvalidAnchorDay) {
			response.RespondError(w, http.StatusBadRequest, cycle.ErrInvalidAnchorDay.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveCycles.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, periods)
}

// CycleExpenses handles GET requests to retrieve the expenses of one
// historical period, addressed by its key.
//
// Endpoint: GET /api/cycles/{key}/expenses?account={uuid}
// Response: 200 OK with array of Expense
// Error: 400 Bad Request if the key is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *PeriodHandler) CycleExpenses(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	expenses, err := h.periodService.ExpensesForKey(r.Context(), key, r.URL.Query().Get("account"))
	if err != nil {
		if errors.Is(err, cycle.ErrInvalidCycleKey) {
			response.RespondError(w, http.StatusBadRequest, cycle.ErrInvalidCycleKey.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expenses)
}

// ResetPeriod handles POST requests to close the current period by
// appending a period marker. The optional timestamp in the body defaults
// to now.
//
// Endpoint: POST /api/period/reset
// Request Body: ResetPeriodRequest (timestamp, optional)
// Response: 201 Created with PeriodMarker
// Error: 400 Bad Request if the timestamp is malformed
// Error: 500 Internal Server Error if the reset fails
func (h *PeriodHandler) ResetPeriod(w http.ResponseWriter, r *http.Request) {
	at := time.Now()

	if r.ContentLength > 0 {
		req, err := parseJSON[request.ResetPeriodRequest](r)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
			return
		}
		if req.Timestamp != nil {
			if at, err = repository.ParseTime(*req.Timestamp); err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid timestamp", err.Error())
				return
			}
		}
	}

	marker, err := h.periodService.ResetPeriod(r.Context(), at)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToResetPeriod.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, marker)
}

// Markers handles GET requests to list all period markers, newest first.
//
// Endpoint: GET /api/period/markers
// Response: 200 OK with array of PeriodMarker
// Error: 500 Internal Server Error if retrieval fails
func (h *PeriodHandler) Markers(w http.ResponseWriter, r *http.Request) {
	markers, err := h.periodService.GetMarkers(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveMarkers.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, markers)
}

// StatementAlerts handles GET requests to list accounts whose billing
// cycle closes within the given number of days, defaulting to 7.
// Alerts are ordered soonest-closing first.
//
// Endpoint: GET /api/alerts/statements?within=7&date=YYYY-MM-DD
// Response: 200 OK with array of StatementAlert
// Error: 400 Bad Request if a query parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *PeriodHandler) StatementAlerts(w http.ResponseWriter, r *http.Request) {
	ref, err := refTime(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	within := 7
	if value := r.URL.Query().Get("within"); value != "" {
		if within, err = strconv.Atoi(value); err != nil || within < 0 {
			response.RespondError(w, http.StatusBadRequest, "within must be a non-negative integer", "")
			return
		}
	}

	alerts, err := h.periodService.StatementAlerts(r.Context(), ref, within)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAlerts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, alerts)
}

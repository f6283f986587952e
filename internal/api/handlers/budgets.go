package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
	"github.com/akaur/Budget-Buddy-Backend/internal/validation"
)

// BudgetHandler handles HTTP requests for budget endpoints.
type BudgetHandler struct {
	budgetService *service.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(budgetService *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// Budgets handles GET requests to retrieve all budgets.
//
// Endpoint: GET /api/budget
// Response: 200 OK with array of Budget
// Error: 500 Internal Server Error if retrieval fails
func (h *BudgetHandler) Budgets(w http.ResponseWriter, r *http.Request) {
	budgets, err := h.budgetService.GetBudgets(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveBudgets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, budgets)
}

// CreateBudget handles POST requests to create a budget.
//
// Endpoint: POST /api/budget
// Request Body: CreateBudgetRequest (accountId, mode, category, amount)
// Response: 201 Created with Budget
// Error: 400 Bad Request if validation fails or a matching budget exists
// Error: 404 Not Found if the target account doesn't exist
// Error: 500 Internal Server Error if creation fails
func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	budget, err := h.budgetService.CreateBudget(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAccountNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrDuplicateBudget), errors.Is(err, apperrors.ErrInvalidBudgetMode):
			response.RespondError(w, http.StatusBadRequest, err.Error(), "")
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create budget", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, budget)
}

// UpdateBudget handles PUT requests to change a budget's amount.
//
// Endpoint: PUT /api/budget/{uuid}
// Request Body: UpdateBudgetRequest (amount)
// Response: 200 OK with updated Budget
// Error: 400 Bad Request if budget ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if budget not found
// Error: 500 Internal Server Error if update fails
func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	budget, err := h.budgetService.UpdateBudget(r.Context(), budgetID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update budget", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, budget)
}

// DeleteBudget handles DELETE requests to remove a budget.
//
// Endpoint: DELETE /api/budget/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if budget ID is invalid (validated by middleware)
// Error: 404 Not Found if budget not found
// Error: 500 Internal Server Error if deletion fails
func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	budgetID := chi.URLParam(r, "uuid")

	if err := h.budgetService.DeleteBudget(r.Context(), budgetID); err != nil {
		if errors.Is(err, apperrors.ErrBudgetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrBudgetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete budget", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/repository"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
	"github.com/akaur/Budget-Buddy-Backend/internal/validation"
)

// ExpenseHandler handles HTTP requests for expense endpoints.
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler with the provided service dependency.
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// refTime reads the optional date query parameter, defaulting to now.
func refTime(r *http.Request) (time.Time, error) {
	if value := r.URL.Query().Get("date"); value != "" {
		return repository.ParseTime(value)
	}
	return time.Now(), nil
}

// Expenses handles GET requests to retrieve the expenses of the active
// period, resolved for the optional account query parameter.
//
// Endpoint: GET /api/expense?account={uuid}&date=YYYY-MM-DD
// Response: 200 OK with array of Expense
// Error: 400 Bad Request if the date parameter is malformed
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	ref, err := refTime(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date parameter", err.Error())
		return
	}

	expenses, err := h.expenseService.GetExpensesForActivePeriod(r.Context(), r.URL.Query().Get("account"), ref)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpenses.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expenses)
}

// GetExpense handles GET requests to retrieve a single expense by ID.
//
// Endpoint: GET /api/expense/{uuid}
// Response: 200 OK with Expense
// Error: 400 Bad Request if expense ID is invalid (validated by middleware)
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if retrieval fails
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	expense, err := h.expenseService.GetExpense(r.Context(), expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveExpense.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// CreateExpense handles POST requests to log a new expense.
//
// Endpoint: POST /api/expense
// Request Body: CreateExpenseRequest (accountId, category, amount, ...)
// Response: 201 Created with Expense
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the target account doesn't exist
// Error: 500 Internal Server Error if creation fails
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.CreateExpense(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAccountNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrAccountArchived):
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrAccountArchived.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create expense", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, expense)
}

// UpdateExpense handles PUT requests to update an existing expense.
//
// Endpoint: PUT /api/expense/{uuid}
// Request Body: UpdateExpenseRequest (all fields optional)
// Response: 200 OK with updated Expense
// Error: 400 Bad Request if expense ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if expense or target account not found
// Error: 500 Internal Server Error if update fails
func (h *ExpenseHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateExpenseRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateExpense(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(r.Context(), expenseID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) || errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, expense)
}

// DeleteExpense handles DELETE requests to remove an expense.
//
// Endpoint: DELETE /api/expense/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if expense ID is invalid (validated by middleware)
// Error: 404 Not Found if expense not found
// Error: 500 Internal Server Error if deletion fails
func (h *ExpenseHandler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	expenseID := chi.URLParam(r, "uuid")

	if err := h.expenseService.DeleteExpense(r.Context(), expenseID); err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrExpenseNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete expense", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

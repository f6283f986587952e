package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
	"github.com/akaur/Budget-Buddy-Backend/internal/validation"
)

// AccountHandler handles HTTP requests for account endpoints.
type AccountHandler struct {
	accountService *service.AccountService
}

// NewAccountHandler creates a new AccountHandler with the provided service dependency.
func NewAccountHandler(accountService *service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Accounts handles GET requests to retrieve all accounts.
// Archived accounts are included when the archived query parameter is true.
//
// Endpoint: GET /api/account?archived=true
// Response: 200 OK with array of Account
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	filter := model.AccountFilter{
		IncludeArchived: r.URL.Query().Get("archived") == "true",
	}

	accounts, err := h.accountService.GetAccounts(r.Context(), filter)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccounts.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, accounts)
}

// GetAccount handles GET requests to retrieve a single account by ID.
//
// Endpoint: GET /api/account/{uuid}
// Response: 200 OK with Account
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	account, err := h.accountService.GetAccount(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAccount.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// CreateAccount handles POST requests to create a new account.
//
// Endpoint: POST /api/account
// Request Body: CreateAccountRequest (name, anchorDay)
// Response: 201 Created with Account
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.CreateAccount(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, account)
}

// UpdateAccount handles PUT requests to update an existing account.
// Setting anchorDay to zero clears the billing anchor.
//
// Endpoint: PUT /api/account/{uuid}
// Request Body: UpdateAccountRequest (all fields optional)
// Response: 200 OK with updated Account
// Error: 400 Bad Request if account ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if update fails
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateAccountRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateAccount(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	account, err := h.accountService.UpdateAccount(r.Context(), accountID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, account)
}

// ArchiveAccount handles DELETE requests to archive an account.
// Archiving hides the account from listings; its expense history is kept.
//
// Endpoint: DELETE /api/account/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if archiving fails
func (h *AccountHandler) ArchiveAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "uuid")

	if err := h.accountService.ArchiveAccount(r.Context(), accountID); err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to archive account", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

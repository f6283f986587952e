package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/api/response"
	"github.com/akaur/Budget-Buddy-Backend/internal/apperrors"
	"github.com/akaur/Budget-Buddy-Backend/internal/service"
	"github.com/akaur/Budget-Buddy-Backend/internal/validation"
)

// RecurringHandler handles HTTP requests for recurring template endpoints.
type RecurringHandler struct {
	recurringService *service.RecurringService
}

// NewRecurringHandler creates a new RecurringHandler with the provided service dependency.
func NewRecurringHandler(recurringService *service.RecurringService) *RecurringHandler {
	return &RecurringHandler{
		recurringService: recurringService,
	}
}

// Templates handles GET requests to retrieve recurring templates.
// Inactive templates are included when the all query parameter is true.
//
// Endpoint: GET /api/recurring?all=true
// Response: 200 OK with array of RecurringTemplate
// Error: 500 Internal Server Error if retrieval fails
func (h *RecurringHandler) Templates(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true"

	templates, err := h.recurringService.GetTemplates(r.Context(), activeOnly)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTemplates.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, templates)
}

// GetTemplate handles GET requests to retrieve a single template by ID.
//
// Endpoint: GET /api/recurring/{uuid}
// Response: 200 OK with RecurringTemplate
// Error: 400 Bad Request if template ID is invalid (validated by middleware)
// Error: 404 Not Found if template not found
// Error: 500 Internal Server Error if retrieval fails
func (h *RecurringHandler) GetTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "uuid")

	template, err := h.recurringService.GetTemplate(r.Context(), templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTemplateNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTemplateNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveTemplates.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, template)
}

// CreateTemplate handles POST requests to create a recurring template.
//
// Endpoint: POST /api/recurring
// Request Body: CreateRecurringRequest (accountId, category, amount, billingDay, ...)
// Response: 201 Created with RecurringTemplate
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the target account doesn't exist
// Error: 500 Internal Server Error if creation fails
func (h *RecurringHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateRecurringRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateRecurring(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	template, err := h.recurringService.CreateTemplate(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to create recurring template", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, template)
}

// UpdateTemplate handles PUT requests to update an existing template.
//
// Endpoint: PUT /api/recurring/{uuid}
// Request Body: UpdateRecurringRequest (all fields optional)
// Response: 200 OK with updated RecurringTemplate
// Error: 400 Bad Request if template ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if template or target account not found
// Error: 500 Internal Server Error if update fails
func (h *RecurringHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateRecurringRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateRecurring(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	template, err := h.recurringService.UpdateTemplate(r.Context(), templateID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTemplateNotFound) || errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, err.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update recurring template", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, template)
}

// DeleteTemplate handles DELETE requests to remove a template.
// Previously generated expenses keep their template reference.
//
// Endpoint: DELETE /api/recurring/{uuid}
// Response: 204 No Content
// Error: 400 Bad Request if template ID is invalid (validated by middleware)
// Error: 404 Not Found if template not found
// Error: 500 Internal Server Error if deletion fails
func (h *RecurringHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "uuid")

	if err := h.recurringService.DeleteTemplate(r.Context(), templateID); err != nil {
		if errors.Is(err, apperrors.ErrTemplateNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrTemplateNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete recurring template", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ProcessTemplates handles POST requests to run recurring generation
// immediately, outside the scheduled daily run.
//
// Endpoint: POST /api/recurring/process
// Response: 200 OK with array of generated Expense
// Error: 500 Internal Server Error if processing fails
func (h *RecurringHandler) ProcessTemplates(w http.ResponseWriter, r *http.Request) {
	generated, err := h.recurringService.ProcessDue(r.Context(), time.Now())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToProcessRecurring.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, generated)
}

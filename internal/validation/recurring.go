package validation

import (
	"strings"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
)

// ValidateCreateRecurring validates a recurring template creation request.
//
// Required fields:
//   - accountId: Must be a valid UUID
//   - category: Non-empty
//   - amount: Must be positive
//   - billingDay: 1-31
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateRecurring(req request.CreateRecurringRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AccountID); err != nil {
		errors["accountId"] = "accountId must be a valid UUID"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if req.BillingDay < 1 || req.BillingDay > 31 {
		errors["billingDay"] = "billing day must be between 1 and 31"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateRecurring validates a recurring template update request.
// Only provided fields are validated.
func ValidateUpdateRecurring(req request.UpdateRecurringRequest) error {
	errors := make(map[string]string)

	if req.AccountID != nil {
		if err := ValidateUUID(*req.AccountID); err != nil {
			errors["accountId"] = "accountId must be a valid UUID"
		}
	}

	if req.Category != nil && strings.TrimSpace(*req.Category) == "" {
		errors["category"] = "category cannot be empty"
	}

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if req.BillingDay != nil && (*req.BillingDay < 1 || *req.BillingDay > 31) {
		errors["billingDay"] = "billing day must be between 1 and 31"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

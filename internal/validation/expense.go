package validation

import (
	"strings"
	"time"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
)

// ValidateCreateExpense validates an expense creation request.
//
// Required fields:
//   - accountId: Must be a valid UUID
//   - category: Non-empty
//   - amount: Must be positive
//
// Optional fields:
//   - timestamp: Must be YYYY-MM-DD or RFC3339 when set
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateExpense(req request.CreateExpenseRequest) error {
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

	if req.Timestamp != "" {
		if err := validateTimestamp(req.Timestamp); err != nil {
			errors["timestamp"] = "timestamp must be YYYY-MM-DD or RFC3339"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateExpense validates an expense update request.
// Only provided fields are validated.
func ValidateUpdateExpense(req request.UpdateExpenseRequest) error {
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

	if req.Timestamp != nil {
		if err := validateTimestamp(*req.Timestamp); err != nil {
			errors["timestamp"] = "timestamp must be YYYY-MM-DD or RFC3339"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func validateTimestamp(value string) error {
	if _, err := time.Parse("2006-01-02", value); err == nil {
		return nil
	}
	_, err := time.Parse(time.RFC3339, value)
	return err
}

package validation

import (
	"fmt"
	"strings"

	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
)

// ValidateCreateAccount validates an account creation request.
//
// Required fields:
//   - name: Non-empty, 100 characters or less
//
// Optional fields:
//   - anchorDay: 1-31 when set; zero means no billing anchor
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateAccount(req request.CreateAccountRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	} else if len(req.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if req.AnchorDay < 0 || req.AnchorDay > 31 {
		errors["anchorDay"] = "anchor day must be between 1 and 31"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateAccount validates an account update request.
// Only provided fields are validated.
func ValidateUpdateAccount(req request.UpdateAccountRequest) error {
	errors := make(map[string]string)

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			errors["name"] = "name cannot be empty"
		} else if len(*req.Name) > 100 {
			errors["name"] = "name must be 100 characters or less"
		}
	}

	if req.AnchorDay != nil && (*req.AnchorDay < 0 || *req.AnchorDay > 31) {
		errors["anchorDay"] = fmt.Sprintf("anchor day must be between 1 and 31, got %d", *req.AnchorDay)
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

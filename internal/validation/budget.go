package validation

import (
	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/model"
)

// ValidBudgetMode contains the allowed budget mode values.
var ValidBudgetMode = map[string]bool{
	model.BudgetModeTotal: true, model.BudgetModeCategory: true,
}

// ValidateCreateBudget validates a budget creation request.
//
// Required fields:
//   - accountId: Must be a valid UUID
//   - mode: Must be one of: total, category
//   - amount: Must be positive
//   - category: Required for category mode, forbidden for total mode
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateBudget(req request.CreateBudgetRequest) error {
	errors := make(map[string]string)

	if err := ValidateUUID(req.AccountID); err != nil {
		errors["accountId"] = "accountId must be a valid UUID"
	}

	if !ValidBudgetMode[req.Mode] {
		errors["mode"] = "mode must be one of: total, category"
	} else if req.Mode == model.BudgetModeCategory && req.Category == "" {
		errors["category"] = "category is required for category budgets"
	} else if req.Mode == model.BudgetModeTotal && req.Category != "" {
		errors["category"] = "category is not allowed for total budgets"
	}

	if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateUpdateBudget validates a budget update request.
func ValidateUpdateBudget(req request.UpdateBudgetRequest) error {
	errors := make(map[string]string)

	if req.Amount != nil && *req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

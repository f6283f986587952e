package validation

import (
	"github.com/akaur/Budget-Buddy-Backend/internal/api/request"
	"github.com/akaur/Budget-Buddy-Backend/internal/cycle"
)

// ValidateUpdateSettings validates a settings update request.
//
// Required fields:
//   - viewMode: Must be one of: calendar, billing
func ValidateUpdateSettings(req request.UpdateSettingsRequest) error {
	errors := make(map[string]string)

	if !cycle.ValidViewModes[cycle.ViewMode(req.ViewMode)] {
		errors["viewMode"] = "viewMode must be one of: calendar, billing"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

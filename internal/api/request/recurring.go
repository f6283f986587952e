package request

type CreateRecurringRequest struct {
	AccountID   string  `json:"accountId"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	BillingDay  int     `json:"billingDay"`
}

type UpdateRecurringRequest struct {
	AccountID   *string  `json:"accountId,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	BillingDay  *int     `json:"billingDay,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

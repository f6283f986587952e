package request

type CreateExpenseRequest struct {
	AccountID   string  `json:"accountId"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	Timestamp   string  `json:"timestamp,omitempty"`
	IsRecurring bool    `json:"isRecurring,omitempty"`
}

type UpdateExpenseRequest struct {
	AccountID   *string  `json:"accountId,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Timestamp   *string  `json:"timestamp,omitempty"`
}

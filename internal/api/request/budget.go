package request

type CreateBudgetRequest struct {
	AccountID string  `json:"accountId"`
	Mode      string  `json:"mode"`
	Category  string  `json:"category,omitempty"`
	Amount    float64 `json:"amount"`
}

type UpdateBudgetRequest struct {
	Amount *float64 `json:"amount,omitempty"`
}

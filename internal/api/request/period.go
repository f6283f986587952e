package request

type ResetPeriodRequest struct {
	Timestamp *string `json:"timestamp,omitempty"`
}

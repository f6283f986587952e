package request

type CreateAccountRequest struct {
	Name      string `json:"name"`
	AnchorDay int    `json:"anchorDay,omitempty"`
}

type UpdateAccountRequest struct {
	Name       *string `json:"name,omitempty"`
	AnchorDay  *int    `json:"anchorDay,omitempty"`
	IsArchived *bool   `json:"isArchived,omitempty"`
}

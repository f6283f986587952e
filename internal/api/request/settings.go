package request

type UpdateSettingsRequest struct {
	ViewMode string `json:"viewMode"`
}

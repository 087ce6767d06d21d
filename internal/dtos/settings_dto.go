package dtos

// SettingsUpdateRequest carries the user's visible-column selection. A nil
// slice is treated as an explicit empty selection.
type SettingsUpdateRequest struct {
	VisibleColumns []string `json:"visibleColumns"`
}

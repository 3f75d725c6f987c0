package request

// SetPreferenceRequest toggles the presentation-only conversation UI state.
type SetPreferenceRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	PanelCollapsed bool   `json:"panel_collapsed"`
	IntroDismissed bool   `json:"intro_dismissed"`
}

package response

import (
	"time"

	"craftbridge/internal/domain/entities"
)

type PreferenceResponse struct {
	UserID         string    `json:"user_id"`
	ConversationID string    `json:"conversation_id"`
	PanelCollapsed bool      `json:"panel_collapsed"`
	IntroDismissed bool      `json:"intro_dismissed"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromPreference(p entities.ConversationPreference) PreferenceResponse {
	return PreferenceResponse{
		UserID:         p.UserID,
		ConversationID: p.ConversationID,
		PanelCollapsed: p.PanelCollapsed,
		IntroDismissed: p.IntroDismissed,
		UpdatedAt:      p.UpdatedAt,
	}
}

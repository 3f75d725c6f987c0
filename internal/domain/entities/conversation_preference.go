package entities

import "time"

// ConversationPreference is presentation-only per-user, per-conversation UI
// state (collapsed workflow panel, dismissed intro banner). It lives outside
// the workflow engine and never influences eligibility.
//
// Storage model (DynamoDB):
//   - PK: id = "<user_id>#<conversation_id>"

type ConversationPreference struct {
	UserID          string    `json:"user_id"`
	ConversationID  string    `json:"conversation_id"`
	PanelCollapsed  bool      `json:"panel_collapsed"`
	IntroDismissed  bool      `json:"intro_dismissed"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (p ConversationPreference) Key() string {
	return p.UserID + "#" + p.ConversationID
}

func PreferenceKey(userID, conversationID string) string {
	return userID + "#" + conversationID
}

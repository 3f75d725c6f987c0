package interfaces

import (
	"context"

	"craftbridge/internal/domain/entities"
)

// IConversationPreferenceRepository persists presentation-only per-user,
// per-conversation UI preferences.

type IConversationPreferenceRepository interface {
	Put(ctx context.Context, p entities.ConversationPreference) (entities.ConversationPreference, error)
	Get(ctx context.Context, userID, conversationID string) (entities.ConversationPreference, error)
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase/interfaces"
)

var ErrInvalidUserID = errors.New("invalid user_id")

// IPreferenceUseCase manages presentation-only conversation UI preferences.
// These never feed back into the workflow engine.

type IPreferenceUseCase interface {
	Set(ctx context.Context, userID, conversationID string, panelCollapsed, introDismissed bool) (entities.ConversationPreference, error)
	Get(ctx context.Context, userID, conversationID string) (entities.ConversationPreference, error)
}

type PreferenceUseCase struct {
	repo interfaces.IConversationPreferenceRepository
}

var _ IPreferenceUseCase = (*PreferenceUseCase)(nil)

func NewPreferenceUseCase(repo interfaces.IConversationPreferenceRepository) *PreferenceUseCase {
	return &PreferenceUseCase{repo: repo}
}

func (u *PreferenceUseCase) Set(ctx context.Context, userID, conversationID string, panelCollapsed, introDismissed bool) (entities.ConversationPreference, error) {
	userID = strings.TrimSpace(userID)
	conversationID = strings.TrimSpace(conversationID)
	if userID == "" {
		return entities.ConversationPreference{}, ErrInvalidUserID
	}
	if conversationID == "" {
		return entities.ConversationPreference{}, ErrInvalidConversationID
	}

	p := entities.ConversationPreference{
		UserID:         userID,
		ConversationID: conversationID,
		PanelCollapsed: panelCollapsed,
		IntroDismissed: introDismissed,
		UpdatedAt:      time.Now().UTC(),
	}
	return u.repo.Put(ctx, p)
}

func (u *PreferenceUseCase) Get(ctx context.Context, userID, conversationID string) (entities.ConversationPreference, error) {
	userID = strings.TrimSpace(userID)
	conversationID = strings.TrimSpace(conversationID)
	if userID == "" {
		return entities.ConversationPreference{}, ErrInvalidUserID
	}
	if conversationID == "" {
		return entities.ConversationPreference{}, ErrInvalidConversationID
	}

	p, err := u.repo.Get(ctx, userID, conversationID)
	if err != nil {
		return entities.ConversationPreference{}, err
	}
	if p.UserID == "" {
		// Defaults for a user who never touched the panel.
		return entities.ConversationPreference{UserID: userID, ConversationID: conversationID}, nil
	}
	return p, nil
}

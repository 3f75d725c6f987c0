package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/domain/workflow"
	"craftbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDesignApprovalNotFound    = errors.New("design approval not found")
	ErrDuplicateActiveSubmission = errors.New("active design submission already exists for this scope")
	ErrInvalidStateTransition    = errors.New("action not permitted from current state")
	ErrConcurrentModification    = errors.New("record was modified concurrently")
	ErrInvalidConversationID     = errors.New("invalid conversation_id")
	ErrInvalidItemRef            = errors.New("invalid item reference")
	ErrInvalidDesignApprovalID   = errors.New("invalid design approval id")
	ErrEmptyFiles                = errors.New("file list must not be empty")
	ErrEmptyRejectionReason      = errors.New("rejection reason must not be empty")
	ErrEmptyChangeNotes          = errors.New("change request notes must not be empty")
	ErrUnknownDesignAction       = errors.New("unknown design action")
)

// IDesignApprovalUseCase exposes the design-approval workflow operations.
//
//   - Create       => buyer uploads a design for one scope
//   - Decide       => seller approve / reject / request changes / start review
//   - Resubmit     => buyer replaces files after changes were requested

type IDesignApprovalUseCase interface {
	Create(ctx context.Context, conversationID string, item entities.ItemRef, scopeKey string, files []entities.FileRef) (entities.DesignApproval, error)
	Decide(ctx context.Context, id string, action entities.DesignAction, notes string) (entities.DesignApproval, error)
	Resubmit(ctx context.Context, id string, files []entities.FileRef) (entities.DesignApproval, error)
	GetByID(ctx context.Context, id string) (entities.DesignApproval, error)
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.DesignApproval, error)
}

type DesignApprovalUseCase struct {
	repo interfaces.IDesignApprovalRepository
}

var _ IDesignApprovalUseCase = (*DesignApprovalUseCase)(nil)

func NewDesignApprovalUseCase(repo interfaces.IDesignApprovalRepository) *DesignApprovalUseCase {
	return &DesignApprovalUseCase{repo: repo}
}

func (u *DesignApprovalUseCase) Create(ctx context.Context, conversationID string, item entities.ItemRef, scopeKey string, files []entities.FileRef) (entities.DesignApproval, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return entities.DesignApproval{}, ErrInvalidConversationID
	}
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" || !item.Kind.Valid() {
		return entities.DesignApproval{}, ErrInvalidItemRef
	}
	scopeKey = normalizeScopeKey(scopeKey)
	files = validFiles(files)
	if len(files) == 0 {
		return entities.DesignApproval{}, ErrEmptyFiles
	}

	// One pending-seller-action submission per triple.
	existing, err := u.repo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if workflow.ActiveSubmission(scopeKey, filterApprovalsByItem(existing, item)) != nil {
		return entities.DesignApproval{}, ErrDuplicateActiveSubmission
	}

	now := time.Now().UTC()
	a := entities.DesignApproval{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		ItemID:         item.ID,
		ItemKind:       item.Kind,
		ScopeKey:       scopeKey,
		Files:          files,
		Status:         entities.DesignStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, a)
}

func (u *DesignApprovalUseCase) Decide(ctx context.Context, id string, action entities.DesignAction, notes string) (entities.DesignApproval, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignApproval{}, ErrInvalidDesignApprovalID
	}
	notes = strings.TrimSpace(notes)

	switch action {
	case entities.DesignActionApprove, entities.DesignActionStartReview:
	case entities.DesignActionReject:
		if notes == "" {
			return entities.DesignApproval{}, ErrEmptyRejectionReason
		}
	case entities.DesignActionRequestChanges:
		if notes == "" {
			return entities.DesignApproval{}, ErrEmptyChangeNotes
		}
	default:
		return entities.DesignApproval{}, ErrUnknownDesignAction
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if current.ID == "" {
		return entities.DesignApproval{}, ErrDesignApprovalNotFound
	}

	next, ok := current.Status.NextStatusForAction(action)
	if !ok {
		return entities.DesignApproval{}, ErrInvalidStateTransition
	}

	var approvedAt *time.Time
	if next == entities.DesignStatusApproved {
		t := time.Now().UTC()
		approvedAt = &t
	}

	// Conditional update against the status we just read; a lost race
	// surfaces as a concurrent modification instead of an overwrite.
	updated, err := u.repo.UpdateStatus(ctx, id, current.Status, next, notes, approvedAt)
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if updated.ID == "" {
		return entities.DesignApproval{}, ErrConcurrentModification
	}
	return updated, nil
}

func (u *DesignApprovalUseCase) Resubmit(ctx context.Context, id string, files []entities.FileRef) (entities.DesignApproval, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignApproval{}, ErrInvalidDesignApprovalID
	}
	files = validFiles(files)
	if len(files) == 0 {
		return entities.DesignApproval{}, ErrEmptyFiles
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if current.ID == "" {
		return entities.DesignApproval{}, ErrDesignApprovalNotFound
	}
	if !current.Status.CanResubmit() {
		return entities.DesignApproval{}, ErrInvalidStateTransition
	}

	updated, err := u.repo.Resubmit(ctx, id, current.Status, files)
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if updated.ID == "" {
		return entities.DesignApproval{}, ErrConcurrentModification
	}
	return updated, nil
}

func (u *DesignApprovalUseCase) GetByID(ctx context.Context, id string) (entities.DesignApproval, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DesignApproval{}, ErrInvalidDesignApprovalID
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DesignApproval{}, err
	}
	if a.ID == "" {
		return entities.DesignApproval{}, ErrDesignApprovalNotFound
	}
	return a, nil
}

func (u *DesignApprovalUseCase) ListByConversationID(ctx context.Context, conversationID string) ([]entities.DesignApproval, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, ErrInvalidConversationID
	}
	return u.repo.ListByConversationID(ctx, conversationID)
}

func normalizeScopeKey(scopeKey string) string {
	scopeKey = strings.TrimSpace(scopeKey)
	if scopeKey == "" {
		return entities.ScopeKeyCustom
	}
	return scopeKey
}

func validFiles(files []entities.FileRef) []entities.FileRef {
	out := make([]entities.FileRef, 0, len(files))
	for _, f := range files {
		if strings.TrimSpace(f.Key) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

func filterApprovalsByItem(approvals []entities.DesignApproval, item entities.ItemRef) []entities.DesignApproval {
	out := make([]entities.DesignApproval, 0, len(approvals))
	for _, a := range approvals {
		if a.ItemID == item.ID && a.ItemKind == item.Kind {
			out = append(out, a)
		}
	}
	return out
}

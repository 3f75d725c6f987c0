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
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrItemNotFound           = errors.New("item not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuotePrice      = errors.New("quoted price must be greater than zero")
	ErrInvalidQuoteQuantity   = errors.New("quantity must be at least 1")
	ErrDesignApprovalRequired = errors.New("approved design required before quoting this scope")
	ErrUnknownQuoteAction     = errors.New("unknown quote action")
)

// IQuoteUseCase exposes the quote workflow operations.
//
// Issue is the authoritative place for design-first enforcement: the check
// runs server-side here regardless of what the UI disabled.

type IQuoteUseCase interface {
	Issue(ctx context.Context, conversationID string, item entities.ItemRef, scopeKey string, price decimal.Decimal, quantity int, expiresAt *time.Time, notes string) (entities.Quote, error)
	Respond(ctx context.Context, id string, action entities.QuoteAction, reason string) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo         interfaces.IQuoteRepository
	approvalRepo interfaces.IDesignApprovalRepository
	catalog      interfaces.IItemCatalog
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, approvalRepo interfaces.IDesignApprovalRepository, catalog interfaces.IItemCatalog) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, approvalRepo: approvalRepo, catalog: catalog}
}

func (u *QuoteUseCase) Issue(ctx context.Context, conversationID string, item entities.ItemRef, scopeKey string, price decimal.Decimal, quantity int, expiresAt *time.Time, notes string) (entities.Quote, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return entities.Quote{}, ErrInvalidConversationID
	}
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" || !item.Kind.Valid() {
		return entities.Quote{}, ErrInvalidItemRef
	}
	scopeKey = normalizeScopeKey(scopeKey)
	if price.Sign() <= 0 {
		return entities.Quote{}, ErrInvalidQuotePrice
	}
	if quantity < 1 {
		return entities.Quote{}, ErrInvalidQuoteQuantity
	}
	notes = strings.TrimSpace(notes)

	cat, err := u.catalog.GetItem(ctx, item.ID, item.Kind)
	if err != nil {
		return entities.Quote{}, err
	}
	if cat.ID == "" {
		return entities.Quote{}, ErrItemNotFound
	}

	approvals, err := u.approvalRepo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return entities.Quote{}, err
	}
	approved := workflow.LatestApprovedDesign(scopeKey, filterApprovalsByItem(approvals, item))

	// Design-first enforcement: only when the item configures both
	// prerequisites. Quoting alone never requires a design.
	if cat.RequiresDesignApproval && cat.RequiresQuote && approved == nil {
		return entities.Quote{}, ErrDesignApprovalRequired
	}

	linkedID := ""
	if approved != nil {
		linkedID = approved.ID
	}

	quotes, err := u.repo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return entities.Quote{}, err
	}

	// A still-sent quote for the triple is superseded in place, not duplicated.
	if existing := workflow.SentQuote(scopeKey, filterQuotesByItem(quotes, item)); existing != nil {
		updated, err := u.repo.UpdateSent(ctx, existing.ID, price, quantity, expiresAt, notes, linkedID)
		if err != nil {
			return entities.Quote{}, err
		}
		if updated.ID == "" {
			return entities.Quote{}, ErrConcurrentModification
		}
		return updated, nil
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:                     uuid.NewString(),
		ConversationID:         conversationID,
		ItemID:                 item.ID,
		ItemKind:               item.Kind,
		ScopeKey:               scopeKey,
		QuotedPrice:            price,
		Quantity:               quantity,
		Status:                 entities.QuoteStatusSent,
		ExpiresAt:              expiresAt,
		Notes:                  notes,
		LinkedDesignApprovalID: linkedID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) Respond(ctx context.Context, id string, action entities.QuoteAction, reason string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	var next entities.QuoteStatus
	switch action {
	case entities.QuoteActionAccept:
		next = entities.QuoteStatusAccepted
	case entities.QuoteActionReject:
		next = entities.QuoteStatusRejected
	default:
		return entities.Quote{}, ErrUnknownQuoteAction
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	// Lazy expiry: a sent quote past expires_at is already terminal even
	// though storage still says sent.
	if !current.Acceptable(time.Now().UTC()) {
		return entities.Quote{}, ErrInvalidStateTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.QuoteStatusSent, next, strings.TrimSpace(reason))
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrConcurrentModification
	}
	return updated, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByConversationID(ctx context.Context, conversationID string) ([]entities.Quote, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, ErrInvalidConversationID
	}
	return u.repo.ListByConversationID(ctx, conversationID)
}

func filterQuotesByItem(quotes []entities.Quote, item entities.ItemRef) []entities.Quote {
	out := make([]entities.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.ItemID == item.ID && q.ItemKind == item.Kind {
			out = append(out, q)
		}
	}
	return out
}

package usecase

import (
	"context"
	"strings"
	"time"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/domain/workflow"
	"craftbridge/internal/usecase/interfaces"
)

// IWorkflowUseCase exposes the read side of the workflow engine: the grouped
// per-conversation summary and the point eligibility check consumed by the
// purchase collaborator before finalizing payment.

type IWorkflowUseCase interface {
	Summary(ctx context.Context, conversationID string) (workflow.Summary, error)
	Evaluate(ctx context.Context, conversationID string, item entities.ItemRef, variantID, packageID string) (workflow.Eligibility, error)
}

type WorkflowUseCase struct {
	approvalRepo interfaces.IDesignApprovalRepository
	quoteRepo    interfaces.IQuoteRepository
	catalog      interfaces.IItemCatalog
}

var _ IWorkflowUseCase = (*WorkflowUseCase)(nil)

func NewWorkflowUseCase(approvalRepo interfaces.IDesignApprovalRepository, quoteRepo interfaces.IQuoteRepository, catalog interfaces.IItemCatalog) *WorkflowUseCase {
	return &WorkflowUseCase{approvalRepo: approvalRepo, quoteRepo: quoteRepo, catalog: catalog}
}

// Summary recomputes the grouped projection from the latest persisted records.
// Nothing is cached or stored; the view cannot drift from the source records.
func (u *WorkflowUseCase) Summary(ctx context.Context, conversationID string) (workflow.Summary, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return workflow.Summary{}, ErrInvalidConversationID
	}

	approvals, err := u.approvalRepo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return workflow.Summary{}, err
	}
	quotes, err := u.quoteRepo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return workflow.Summary{}, err
	}

	items, err := u.resolveItems(ctx, approvals, quotes)
	if err != nil {
		return workflow.Summary{}, err
	}
	lookup := func(itemID string, kind entities.ItemKind) (entities.Item, bool) {
		it, ok := items[itemKey{itemID, kind}]
		return it, ok && it.ID != ""
	}

	return workflow.BuildSummary(conversationID, approvals, quotes, lookup, time.Now().UTC()), nil
}

// Evaluate resolves the scope key and computes eligibility for one option.
func (u *WorkflowUseCase) Evaluate(ctx context.Context, conversationID string, item entities.ItemRef, variantID, packageID string) (workflow.Eligibility, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return workflow.Eligibility{}, ErrInvalidConversationID
	}
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" || !item.Kind.Valid() {
		return workflow.Eligibility{}, ErrInvalidItemRef
	}

	cat, err := u.catalog.GetItem(ctx, item.ID, item.Kind)
	if err != nil {
		return workflow.Eligibility{}, err
	}
	if cat.ID == "" {
		return workflow.Eligibility{}, ErrItemNotFound
	}

	approvals, err := u.approvalRepo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return workflow.Eligibility{}, err
	}
	quotes, err := u.quoteRepo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return workflow.Eligibility{}, err
	}

	scopeKey := entities.ResolveScopeKey(item.Kind, variantID, packageID)
	return workflow.Evaluate(cat, scopeKey, filterApprovalsByItem(approvals, item), filterQuotesByItem(quotes, item), time.Now().UTC()), nil
}

type itemKey struct {
	id   string
	kind entities.ItemKind
}

func (u *WorkflowUseCase) resolveItems(ctx context.Context, approvals []entities.DesignApproval, quotes []entities.Quote) (map[itemKey]entities.Item, error) {
	out := map[itemKey]entities.Item{}
	fetch := func(id string, kind entities.ItemKind) error {
		k := itemKey{id, kind}
		if _, done := out[k]; done {
			return nil
		}
		it, err := u.catalog.GetItem(ctx, id, kind)
		if err != nil {
			return err
		}
		out[k] = it
		return nil
	}
	for _, a := range approvals {
		if err := fetch(a.ItemID, a.ItemKind); err != nil {
			return nil, err
		}
	}
	for _, q := range quotes {
		if err := fetch(q.ItemID, q.ItemKind); err != nil {
			return nil, err
		}
	}
	return out, nil
}

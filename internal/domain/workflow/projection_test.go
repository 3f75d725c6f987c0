package workflow

import (
	"testing"
	"time"

	"craftbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestBuildSummary_GroupsAndOrders(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t0 := now.Add(-3 * time.Hour)
	t1 := now.Add(-2 * time.Hour)

	approvals := []entities.DesignApproval{
		{ID: "da-1", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-b", Status: entities.DesignStatusPending, CreatedAt: t1},
		{ID: "da-2", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.DesignStatusPending, CreatedAt: t0},
		{ID: "da-other", ConversationID: "conv-2", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-z", Status: entities.DesignStatusPending, CreatedAt: t0},
	}
	quotes := []entities.Quote{
		{ID: "q-1", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-b", Status: entities.QuoteStatusSent, QuotedPrice: decimal.NewFromInt(50), CreatedAt: t1.Add(time.Minute), UpdatedAt: t1.Add(time.Minute)},
	}

	s := BuildSummary("conv-1", approvals, quotes, nil, now)

	if s.ConversationID != "conv-1" {
		t.Fatalf("unexpected conversation id %q", s.ConversationID)
	}
	if len(s.Scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(s.Scopes))
	}
	if s.Scopes[0].ScopeKey != "var-a" || s.Scopes[1].ScopeKey != "var-b" {
		t.Fatalf("scopes must sort by first activity: %q, %q", s.Scopes[0].ScopeKey, s.Scopes[1].ScopeKey)
	}
	if len(s.Scopes[1].Approvals) != 1 || len(s.Scopes[1].Quotes) != 1 {
		t.Fatalf("var-b should hold one approval and one quote: %+v", s.Scopes[1])
	}
	if len(s.Scopes[0].Quotes) != 0 {
		t.Fatalf("var-a has no quotes")
	}
}

func TestBuildSummary_DefaultScopeKey(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t0 := now.Add(-2 * time.Hour)
	approvedAt := now.Add(-time.Hour)

	t.Run("first scope without progress", func(t *testing.T) {
		approvals := []entities.DesignApproval{
			{ID: "da-1", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.DesignStatusApproved, ApprovedAt: &approvedAt, CreatedAt: t0},
			{ID: "da-2", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-b", Status: entities.DesignStatusPending, CreatedAt: t0.Add(time.Minute)},
		}

		s := BuildSummary("conv-1", approvals, nil, nil, now)
		if s.DefaultScopeKey != "var-b" {
			t.Fatalf("expected var-b (no approved design), got %q", s.DefaultScopeKey)
		}
		if !s.Scopes[0].HasApprovedDesign {
			t.Fatalf("var-a must report an approved design")
		}
	})

	t.Run("all scopes progressed falls back to first", func(t *testing.T) {
		approvals := []entities.DesignApproval{
			{ID: "da-1", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.DesignStatusApproved, ApprovedAt: &approvedAt, CreatedAt: t0},
		}

		s := BuildSummary("conv-1", approvals, nil, nil, now)
		if s.DefaultScopeKey != "var-a" {
			t.Fatalf("expected fallback var-a, got %q", s.DefaultScopeKey)
		}
	})

	t.Run("empty conversation", func(t *testing.T) {
		s := BuildSummary("conv-1", nil, nil, nil, now)
		if len(s.Scopes) != 0 || s.DefaultScopeKey != "" {
			t.Fatalf("expected empty summary, got %+v", s)
		}
	})
}

func TestBuildSummary_UsesItemLookup(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	t0 := now.Add(-time.Hour)

	approvals := []entities.DesignApproval{
		{ID: "da-1", ConversationID: "conv-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.DesignStatusPending, CreatedAt: t0},
	}
	lookup := func(itemID string, kind entities.ItemKind) (entities.Item, bool) {
		if itemID != "item-1" || kind != entities.ItemKindProduct {
			t.Fatalf("unexpected lookup %s/%s", itemID, kind)
		}
		return entities.Item{ID: itemID, Kind: kind, RequiresDesignApproval: true, ListPrice: decimal.NewFromInt(40)}, true
	}

	s := BuildSummary("conv-1", approvals, nil, lookup, now)
	g := s.Scopes[0]
	if g.Eligibility.CanPurchase {
		t.Fatalf("pending design must block purchase for a design-required item")
	}
	if g.Eligibility.Stage != StageAwaitingDesignApproval {
		t.Fatalf("expected awaiting_design_approval, got %s", g.Eligibility.Stage)
	}
	if !g.Eligibility.ChargePrice.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected list price from lookup, got %s", g.Eligibility.ChargePrice)
	}
}

package workflow

import (
	"sort"
	"time"

	"craftbridge/internal/domain/entities"
)

// ScopeGroup is the read-optimized view of one scope inside a conversation:
// its full approval and quote history plus the current eligibility.

type ScopeGroup struct {
	ScopeKey          string                      `json:"scope_key"`
	ItemID            string                      `json:"item_id"`
	ItemKind          entities.ItemKind           `json:"item_kind"`
	Approvals         []entities.DesignApproval   `json:"approvals"`
	Quotes            []entities.Quote            `json:"quotes"`
	Eligibility       Eligibility                 `json:"eligibility"`
	HasApprovedDesign bool                        `json:"has_approved_design"`
	HasAcceptedQuote  bool                        `json:"has_accepted_quote"`
	FirstActivityAt   time.Time                   `json:"first_activity_at"`
}

// Summary is the per-conversation projection, grouped by scope in scope
// creation order. DefaultScopeKey pre-populates option selection: the first
// scope with no prior interaction, else the first scope overall.

type Summary struct {
	ConversationID  string       `json:"conversation_id"`
	Scopes          []ScopeGroup `json:"scopes"`
	DefaultScopeKey string       `json:"default_scope_key,omitempty"`
}

// ItemLookup resolves the requirement flags and list price for an item id.
// The projection is pure; the caller resolves items up front and passes them
// in (missing entries evaluate against a zero-requirements item).

type ItemLookup func(itemID string, kind entities.ItemKind) (entities.Item, bool)

// BuildSummary derives the grouped workflow view from raw persisted records.
// It never mutates its inputs and is recomputed on every read.
func BuildSummary(conversationID string, approvals []entities.DesignApproval, quotes []entities.Quote, lookup ItemLookup, now time.Time) Summary {
	groups := map[string]*ScopeGroup{}

	groupFor := func(scopeKey, itemID string, kind entities.ItemKind, at time.Time) *ScopeGroup {
		g, ok := groups[scopeKey]
		if !ok {
			g = &ScopeGroup{ScopeKey: scopeKey, ItemID: itemID, ItemKind: kind, FirstActivityAt: at}
			groups[scopeKey] = g
		}
		if at.Before(g.FirstActivityAt) {
			g.FirstActivityAt = at
		}
		return g
	}

	for _, a := range approvals {
		if a.ConversationID != conversationID {
			continue
		}
		g := groupFor(a.ScopeKey, a.ItemID, a.ItemKind, a.CreatedAt)
		g.Approvals = append(g.Approvals, a)
	}
	for _, q := range quotes {
		if q.ConversationID != conversationID {
			continue
		}
		g := groupFor(q.ScopeKey, q.ItemID, q.ItemKind, q.CreatedAt)
		g.Quotes = append(g.Quotes, q)
	}

	out := Summary{ConversationID: conversationID}
	for _, g := range groups {
		item := entities.Item{ID: g.ItemID, Kind: g.ItemKind}
		if lookup != nil {
			if resolved, ok := lookup(g.ItemID, g.ItemKind); ok {
				item = resolved
			}
		}
		g.Eligibility = Evaluate(item, g.ScopeKey, g.Approvals, g.Quotes, now)
		g.HasApprovedDesign = g.Eligibility.ApprovedDesignID != ""
		g.HasAcceptedQuote = g.Eligibility.ActiveQuoteStatus == entities.QuoteStatusAccepted
		out.Scopes = append(out.Scopes, *g)
	}

	sort.Slice(out.Scopes, func(i, j int) bool {
		a, b := out.Scopes[i], out.Scopes[j]
		if a.FirstActivityAt.Equal(b.FirstActivityAt) {
			return a.ScopeKey < b.ScopeKey
		}
		return a.FirstActivityAt.Before(b.FirstActivityAt)
	})

	for _, g := range out.Scopes {
		if !g.HasApprovedDesign && !g.HasAcceptedQuote {
			out.DefaultScopeKey = g.ScopeKey
			break
		}
	}
	if out.DefaultScopeKey == "" && len(out.Scopes) > 0 {
		out.DefaultScopeKey = out.Scopes[0].ScopeKey
	}

	return out
}

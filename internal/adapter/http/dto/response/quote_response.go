package response

import (
	"time"

	"craftbridge/internal/domain/entities"
)

type QuoteResponse struct {
	ID                     string     `json:"id"`
	ConversationID         string     `json:"conversation_id"`
	ItemID                 string     `json:"item_id"`
	ItemKind               string     `json:"item_kind"`
	ScopeKey               string     `json:"scope_key"`
	QuotedPrice            string     `json:"quoted_price"`
	Quantity               int        `json:"quantity"`
	Status                 string     `json:"status"`
	EffectiveStatus        string     `json:"effective_status"`
	ExpiresAt              *time.Time `json:"expires_at,omitempty"`
	Notes                  string     `json:"notes,omitempty"`
	BuyerReason            string     `json:"buyer_reason,omitempty"`
	LinkedDesignApprovalID string     `json:"linked_design_approval_id,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// FromQuote maps a quote at a point in time; effective_status carries the
// lazily derived expiry so clients never reimplement it.
func FromQuote(q entities.Quote, now time.Time) QuoteResponse {
	return QuoteResponse{
		ID:                     q.ID,
		ConversationID:         q.ConversationID,
		ItemID:                 q.ItemID,
		ItemKind:               string(q.ItemKind),
		ScopeKey:               q.ScopeKey,
		QuotedPrice:            q.QuotedPrice.String(),
		Quantity:               q.Quantity,
		Status:                 string(q.Status),
		EffectiveStatus:        string(q.EffectiveStatus(now)),
		ExpiresAt:              q.ExpiresAt,
		Notes:                  q.Notes,
		BuyerReason:            q.BuyerReason,
		LinkedDesignApprovalID: q.LinkedDesignApprovalID,
		CreatedAt:              q.CreatedAt,
		UpdatedAt:              q.UpdatedAt,
	}
}

func FromQuotes(in []entities.Quote, now time.Time) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(in))
	for _, q := range in {
		out = append(out, FromQuote(q, now))
	}
	return out
}

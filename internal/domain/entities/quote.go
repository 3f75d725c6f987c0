package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a seller price offer.
//
// Domain notes:
//   - sent is the only non-terminal stored status; at most one quote per
//     (conversation, item, scopeKey) triple may hold it at a time.
//   - expired is never written to storage. It is derived at read time from
//     expires_at so no background sweep is needed.

type QuoteStatus string

const (
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteAction is a buyer response to a sent quote.

type QuoteAction string

const (
	QuoteActionAccept QuoteAction = "accept"
	QuoteActionReject QuoteAction = "reject"
)

// Quote is a seller-issued price/quantity offer for one scope.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (conversation_id-index): conversation_id
//
// An accepted quote is terminal and authoritative for the charge price.
// Re-issuing while a quote is still sent updates that record in place
// rather than creating an independent one.

type Quote struct {
	ID                     string          `json:"id"`
	ConversationID         string          `json:"conversation_id"`
	ItemID                 string          `json:"item_id"`
	ItemKind               ItemKind        `json:"item_kind"`
	ScopeKey               string          `json:"scope_key"`
	QuotedPrice            decimal.Decimal `json:"quoted_price"`
	Quantity               int             `json:"quantity"`
	Status                 QuoteStatus     `json:"status"`
	ExpiresAt              *time.Time      `json:"expires_at,omitempty"`
	Notes                  string          `json:"notes,omitempty"`
	BuyerReason            string          `json:"buyer_reason,omitempty"`
	LinkedDesignApprovalID string          `json:"linked_design_approval_id,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// IsTerminal reports whether a stored status allows no further transition.
func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// EffectiveStatus applies lazy expiry: a sent quote past its expires_at is
// reported expired regardless of the stored status.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q.Status == QuoteStatusSent && q.ExpiresAt != nil && q.ExpiresAt.Before(now) {
		return QuoteStatusExpired
	}
	return q.Status
}

// Acceptable reports whether the buyer may still accept or reject the quote.
func (q Quote) Acceptable(now time.Time) bool {
	return q.EffectiveStatus(now) == QuoteStatusSent
}

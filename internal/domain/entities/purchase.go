package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus represents the payment outcome for a finalized purchase.

type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusApproved PurchaseStatus = "approved"
	PurchaseStatusDenied   PurchaseStatus = "denied"
)

// Purchase is the record written when a buyer completes checkout for a scope.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI (conversation_id-index): conversation_id
//
// ChargedPrice is always resolved server-side from the eligibility engine at
// finalization time, never taken from the client.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for audit.
//   - ProviderPayload is an optional parsed representation for debugging.

type Purchase struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	ItemID         string          `json:"item_id"`
	ItemKind       ItemKind        `json:"item_kind"`
	ScopeKey       string          `json:"scope_key"`
	QuoteID        string          `json:"quote_id,omitempty"`
	ChargedPrice   decimal.Decimal `json:"charged_price"`
	Date           time.Time       `json:"date"`
	Status         PurchaseStatus  `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

package response

import (
	"time"

	"craftbridge/internal/domain/entities"
)

type PurchaseResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	ItemID         string    `json:"item_id"`
	ItemKind       string    `json:"item_kind"`
	ScopeKey       string    `json:"scope_key"`
	QuoteID        string    `json:"quote_id,omitempty"`
	ChargedPrice   string    `json:"charged_price"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`

	ProviderPayloadRaw string                 `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPurchase(p entities.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:                 p.ID,
		ConversationID:     p.ConversationID,
		ItemID:             p.ItemID,
		ItemKind:           string(p.ItemKind),
		ScopeKey:           p.ScopeKey,
		QuoteID:            p.QuoteID,
		ChargedPrice:       p.ChargedPrice.String(),
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
		ProviderPayload:    p.ProviderPayload,
	}
}

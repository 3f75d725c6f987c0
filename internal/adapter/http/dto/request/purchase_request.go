package request

import (
	"encoding/json"
	"strings"

	"craftbridge/internal/domain/entities"
)

// FinalizePurchaseRequest is the checkout payload. The payer payload is kept
// raw: provider schemas vary and the gateway owns interpretation. The charge
// amount is never read from here.
type FinalizePurchaseRequest struct {
	ItemID       string          `json:"item_id" binding:"required"`
	ItemKind     string          `json:"item_kind" binding:"required"`
	VariantID    string          `json:"variant_id"`
	PackageID    string          `json:"package_id"`
	PayerPayload json.RawMessage `json:"payer_payload"`
}

func (r FinalizePurchaseRequest) ResolveItemRef() entities.ItemRef {
	return entities.ItemRef{ID: strings.TrimSpace(r.ItemID), Kind: entities.ItemKind(strings.TrimSpace(r.ItemKind))}
}

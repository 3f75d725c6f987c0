package request

import (
	"strings"
	"time"

	"craftbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IssueQuoteRequest is the seller's issue/update payload. Price is decoded
// as an exact decimal; floats never touch money.
type IssueQuoteRequest struct {
	ItemID    string          `json:"item_id" binding:"required"`
	ItemKind  string          `json:"item_kind" binding:"required"`
	VariantID string          `json:"variant_id"`
	PackageID string          `json:"package_id"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	ExpiresAt *time.Time      `json:"expires_at"`
	Notes     string          `json:"notes"`
}

func (r IssueQuoteRequest) ResolveItemRef() entities.ItemRef {
	return entities.ItemRef{ID: strings.TrimSpace(r.ItemID), Kind: entities.ItemKind(strings.TrimSpace(r.ItemKind))}
}

func (r IssueQuoteRequest) ResolveScopeKey() string {
	return entities.ResolveScopeKey(r.ResolveItemRef().Kind, r.VariantID, r.PackageID)
}

// QuoteResponseRequest is the buyer's accept/reject payload.
type QuoteResponseRequest struct {
	Reason string `json:"reason"`
}

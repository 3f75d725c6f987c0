package workflow

import (
	"time"

	"craftbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PurchaseStage is the explicit finite state of a purchase attempt, derived
// from persisted records on every evaluation. It replaces the scattered
// boolean gating flags a UI would otherwise track and can never drift from
// the underlying approvals and quotes.

type PurchaseStage string

const (
	StageSelectingOption        PurchaseStage = "selecting_option"
	StageAwaitingDesignApproval PurchaseStage = "awaiting_design_approval"
	StageAwaitingQuoteAcceptance PurchaseStage = "awaiting_quote_acceptance"
	StageReadyToPurchase        PurchaseStage = "ready_to_purchase"
)

// Eligibility is the computed permission set for one scope at one instant.

type Eligibility struct {
	ScopeKey            string          `json:"scope_key"`
	CanRequestQuote     bool            `json:"can_request_quote"`
	CanSellerIssueQuote bool            `json:"can_seller_issue_quote"`
	CanPurchase         bool            `json:"can_purchase"`
	ChargePrice         decimal.Decimal `json:"charge_price"`
	ApprovedDesignID    string          `json:"approved_design_id,omitempty"`
	ActiveQuoteID       string          `json:"active_quote_id,omitempty"`
	ActiveQuoteStatus   entities.QuoteStatus `json:"active_quote_status,omitempty"`
	Stage               PurchaseStage   `json:"stage"`
}

// Evaluate computes the authoritative eligibility for a scope. It is
// deterministic and side-effect-free; every mutating action and purchase
// finalization consults it before touching storage.
//
// Rules:
//   - canRequestQuote: design approval prerequisite (when configured) is met.
//   - canSellerIssueQuote: design-first enforcement applies only when the
//     item requires BOTH design approval and quoting.
//   - canPurchase: all configured prerequisites met, including an accepted
//     (non-expired) quote when quoting is required.
//   - chargePrice: the accepted quote's price when one exists for the scope,
//     else the item's list price.
func Evaluate(item entities.Item, scopeKey string, approvals []entities.DesignApproval, quotes []entities.Quote, now time.Time) Eligibility {
	approved := LatestApprovedDesign(scopeKey, approvals)
	active := ActiveQuote(scopeKey, quotes)

	designOK := !item.RequiresDesignApproval || approved != nil

	e := Eligibility{
		ScopeKey:            scopeKey,
		CanRequestQuote:     designOK,
		CanSellerIssueQuote: !(item.RequiresDesignApproval && item.RequiresQuote) || approved != nil,
		ChargePrice:         item.ListPrice,
	}
	if approved != nil {
		e.ApprovedDesignID = approved.ID
	}

	quoteAccepted := false
	if active != nil {
		status := active.EffectiveStatus(now)
		e.ActiveQuoteID = active.ID
		e.ActiveQuoteStatus = status
		quoteAccepted = status == entities.QuoteStatusAccepted
		if quoteAccepted {
			e.ChargePrice = active.QuotedPrice
		}
	}

	e.CanPurchase = designOK && (!item.RequiresQuote || quoteAccepted)

	switch {
	case e.CanPurchase:
		e.Stage = StageReadyToPurchase
	case !designOK:
		e.Stage = StageAwaitingDesignApproval
	case item.RequiresQuote:
		e.Stage = StageAwaitingQuoteAcceptance
	default:
		e.Stage = StageSelectingOption
	}

	return e
}

// LatestApprovedDesign returns the approved design with the most recent
// approved_at for the scope, or nil. Later approvals supersede earlier ones;
// superseded records stay in history but are never "the" approved design.
func LatestApprovedDesign(scopeKey string, approvals []entities.DesignApproval) *entities.DesignApproval {
	var latest *entities.DesignApproval
	for i := range approvals {
		a := &approvals[i]
		if a.ScopeKey != scopeKey || a.Status != entities.DesignStatusApproved || a.ApprovedAt == nil {
			continue
		}
		if latest == nil || a.ApprovedAt.After(*latest.ApprovedAt) {
			latest = a
		}
	}
	return latest
}

// ActiveQuote returns the quote the scope currently revolves around: the one
// with the most recent updated_at. Stored status is not inspected here; the
// caller applies EffectiveStatus for expiry.
func ActiveQuote(scopeKey string, quotes []entities.Quote) *entities.Quote {
	var latest *entities.Quote
	for i := range quotes {
		q := &quotes[i]
		if q.ScopeKey != scopeKey {
			continue
		}
		if latest == nil || q.UpdatedAt.After(latest.UpdatedAt) {
			latest = q
		}
	}
	return latest
}

// SentQuote returns the quote stored as sent for the scope, or nil. The
// create-path uses it to enforce the one-non-terminal-quote invariant and to
// supersede in place.
func SentQuote(scopeKey string, quotes []entities.Quote) *entities.Quote {
	for i := range quotes {
		q := &quotes[i]
		if q.ScopeKey == scopeKey && q.Status == entities.QuoteStatusSent {
			return q
		}
	}
	return nil
}

// ActiveSubmission returns the design approval still waiting on the seller
// for the scope, or nil. The create-path uses it to reject duplicate active
// submissions.
func ActiveSubmission(scopeKey string, approvals []entities.DesignApproval) *entities.DesignApproval {
	for i := range approvals {
		a := &approvals[i]
		if a.ScopeKey == scopeKey && a.Status.IsPendingSellerAction() {
			return a
		}
	}
	return nil
}

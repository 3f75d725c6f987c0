package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase/interfaces"
)

var (
	ErrPurchaseNotFound           = errors.New("purchase not found")
	ErrInvalidPurchaseID          = errors.New("invalid purchase id")
	ErrPurchaseNotEligible        = errors.New("scope is not eligible for purchase")
	ErrInvalidPayerPayload        = errors.New("invalid payer payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IPurchaseUseCase finalizes a purchase or booking for one scope.
//
// Finalization re-evaluates eligibility at the moment of the call; a cached
// or previously displayed eligibility is never trusted. When the check fails
// no charge is attempted and no record is written.

type IPurchaseUseCase interface {
	Finalize(ctx context.Context, conversationID string, item entities.ItemRef, variantID, packageID string, payerPayload json.RawMessage) (entities.Purchase, error)
	GetByID(ctx context.Context, id string) (entities.Purchase, error)
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.Purchase, error)
}

type PurchaseUseCase struct {
	repo     interfaces.IPurchaseRepository
	workflow IWorkflowUseCase
	gateway  interfaces.IPaymentGateway
}

var _ IPurchaseUseCase = (*PurchaseUseCase)(nil)

func NewPurchaseUseCase(repo interfaces.IPurchaseRepository, wf IWorkflowUseCase, gateway interfaces.IPaymentGateway) *PurchaseUseCase {
	return &PurchaseUseCase{repo: repo, workflow: wf, gateway: gateway}
}

func (u *PurchaseUseCase) Finalize(ctx context.Context, conversationID string, item entities.ItemRef, variantID, packageID string, payerPayload json.RawMessage) (entities.Purchase, error) {
	log.Printf("[purchase][usecase] finalize start conversation_id=%s item_id=%s payload_len=%d", conversationID, item.ID, len(payerPayload))
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return entities.Purchase{}, ErrInvalidConversationID
	}
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" || !item.Kind.Valid() {
		return entities.Purchase{}, ErrInvalidItemRef
	}
	if len(payerPayload) == 0 {
		payerPayload = json.RawMessage("{}")
	}
	if !json.Valid(payerPayload) {
		log.Printf("[purchase][usecase] invalid payer payload conversation_id=%s", conversationID)
		return entities.Purchase{}, ErrInvalidPayerPayload
	}
	if u.gateway == nil {
		log.Printf("[purchase][usecase] gateway not configured conversation_id=%s", conversationID)
		return entities.Purchase{}, errors.New("payment gateway not configured")
	}

	// Authoritative gate: evaluate against current records, closing the race
	// between eligibility display and checkout completion.
	elig, err := u.workflow.Evaluate(ctx, conversationID, item, variantID, packageID)
	if err != nil {
		return entities.Purchase{}, err
	}
	if !elig.CanPurchase {
		log.Printf("[purchase][usecase] not eligible conversation_id=%s scope_key=%s stage=%s", conversationID, elig.ScopeKey, elig.Stage)
		return entities.Purchase{}, ErrPurchaseNotEligible
	}
	log.Printf("[purchase][usecase] eligible conversation_id=%s scope_key=%s charge_price=%s", conversationID, elig.ScopeKey, elig.ChargePrice.String())

	// The charge amount is the engine's price, never the client's.
	var reqMap map[string]any
	if err := json.Unmarshal(payerPayload, &reqMap); err != nil {
		return entities.Purchase{}, ErrInvalidPayerPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = conversationID + "#" + elig.ScopeKey
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Purchase %s/%s", conversationID, elig.ScopeKey)
	}
	reqMap["transaction_amount"] = elig.ChargePrice.InexactFloat64()
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Purchase{}, err
	}

	log.Printf("[purchase][usecase] calling payment gateway conversation_id=%s scope_key=%s", conversationID, elig.ScopeKey)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[purchase][usecase] payment gateway failed conversation_id=%s err=%v", conversationID, err)
		if isGatewayUnauthorized(err) {
			return entities.Purchase{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Purchase{}, ErrPaymentGatewayBadRequest
		}
		return entities.Purchase{}, err
	}
	log.Printf("[purchase][usecase] payment gateway success conversation_id=%s provider_payment_id=%s provider_status=%s", conversationID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[purchase][usecase] provider response unmarshal failed conversation_id=%s err=%v", conversationID, err)
	}

	p := entities.Purchase{
		ID:                 providerPaymentID,
		ConversationID:     conversationID,
		ItemID:             item.ID,
		ItemKind:           item.Kind,
		ScopeKey:           elig.ScopeKey,
		QuoteID:            elig.ActiveQuoteID,
		ChargedPrice:       elig.ChargePrice,
		Date:               time.Now().UTC(),
		Status:             entities.PurchaseStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[purchase][usecase] purchase repository create failed conversation_id=%s purchase_id=%s err=%v", conversationID, p.ID, err)
		return entities.Purchase{}, err
	}
	log.Printf("[purchase][usecase] finalize success conversation_id=%s purchase_id=%s status=%s", conversationID, created.ID, created.Status)
	return created, nil
}

func (u *PurchaseUseCase) GetByID(ctx context.Context, id string) (entities.Purchase, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Purchase{}, ErrInvalidPurchaseID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Purchase{}, err
	}
	if p.ID == "" {
		return entities.Purchase{}, ErrPurchaseNotFound
	}
	return p, nil
}

func (u *PurchaseUseCase) ListByConversationID(ctx context.Context, conversationID string) ([]entities.Purchase, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, ErrInvalidConversationID
	}
	return u.repo.ListByConversationID(ctx, conversationID)
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

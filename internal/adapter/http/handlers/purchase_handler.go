package handlers

import (
	"errors"
	"log"
	"net/http"

	request "craftbridge/internal/adapter/http/dto/request"
	response "craftbridge/internal/adapter/http/dto/response"
	"craftbridge/internal/usecase"
	"craftbridge/pkg"

	"github.com/gin-gonic/gin"
)

// PurchaseHandler handles checkout finalization and purchase lookups.

type PurchaseHandler struct {
	usecase usecase.IPurchaseUseCase
}

func NewPurchaseHandler(uc usecase.IPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{usecase: uc}
}

// Finalize charges the eligibility-resolved price and records the purchase.
func (h *PurchaseHandler) Finalize(c *gin.Context) {
	conversationID := c.Param("conversation_id")
	log.Printf("[purchase][handler] finalize start conversation_id=%s", conversationID)

	var payload request.FinalizePurchaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[purchase][handler] invalid payload conversation_id=%s err=%v", conversationID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Finalize(c.Request.Context(), conversationID, payload.ResolveItemRef(), payload.VariantID, payload.PackageID, payload.PayerPayload)
	if err != nil {
		log.Printf("[purchase][handler] finalize failed conversation_id=%s err=%v", conversationID, err)
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[purchase][handler] finalize success conversation_id=%s purchase_id=%s status=%s", conversationID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromPurchase(created))
}

func (h *PurchaseHandler) GetByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPurchase(p))
}

func (h *PurchaseHandler) ListByConversation(c *gin.Context) {
	purchases, err := h.usecase.ListByConversationID(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		appErr := mapPurchaseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, response.FromPurchase(p))
	}
	c.JSON(http.StatusOK, out)
}

func mapPurchaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationID),
		errors.Is(err, usecase.ErrInvalidItemRef),
		errors.Is(err, usecase.ErrInvalidPurchaseID),
		errors.Is(err, usecase.ErrInvalidPayerPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPurchaseNotEligible):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_ELIGIBLE", "The scope is not eligible for purchase", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPurchaseNotFound):
		return pkg.NewDomainErrorSimple("PURCHASE_NOT_FOUND", "Purchase not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

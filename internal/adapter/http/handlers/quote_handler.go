package handlers

import (
	"errors"
	"net/http"
	"time"

	request "craftbridge/internal/adapter/http/dto/request"
	response "craftbridge/internal/adapter/http/dto/response"
	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase"
	"craftbridge/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for the quote workflow: seller issue
// and update, buyer accept/reject.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Issue creates or supersedes the quote for one scope. Design-first
// enforcement happens inside the use case; this route is the security
// boundary, not the UI's disabled button.
func (h *QuoteHandler) Issue(c *gin.Context) {
	conversationID := c.Param("conversation_id")

	var payload request.IssueQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Issue(c.Request.Context(), conversationID, payload.ResolveItemRef(), payload.ResolveScopeKey(), payload.Price, payload.Quantity, payload.ExpiresAt, payload.Notes)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q, time.Now().UTC()))
}

func (h *QuoteHandler) Accept(c *gin.Context) {
	h.respond(c, entities.QuoteActionAccept)
}

func (h *QuoteHandler) Reject(c *gin.Context) {
	h.respond(c, entities.QuoteActionReject)
}

func (h *QuoteHandler) respond(c *gin.Context, action entities.QuoteAction) {
	id := c.Param("id")

	var payload request.QuoteResponseRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
			return
		}
	}

	q, err := h.usecase.Respond(c.Request.Context(), id, action, payload.Reason)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q, time.Now().UTC()))
}

func (h *QuoteHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, time.Now().UTC()))
}

func (h *QuoteHandler) ListByConversation(c *gin.Context) {
	quotes, err := h.usecase.ListByConversationID(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes, time.Now().UTC()))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationID),
		errors.Is(err, usecase.ErrInvalidItemRef),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidQuotePrice),
		errors.Is(err, usecase.ErrInvalidQuoteQuantity),
		errors.Is(err, usecase.ErrUnknownQuoteAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDesignApprovalRequired):
		return pkg.NewDomainErrorSimple("DESIGN_APPROVAL_REQUIRED", "An approved design is required before quoting this scope", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Action not permitted from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The quote changed while processing; reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

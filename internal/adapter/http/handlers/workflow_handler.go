package handlers

import (
	"errors"
	"net/http"
	"strings"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase"
	"craftbridge/pkg"

	"github.com/gin-gonic/gin"
)

// WorkflowHandler exposes the read side: the per-conversation summary and
// the point eligibility check.

type WorkflowHandler struct {
	usecase usecase.IWorkflowUseCase
}

func NewWorkflowHandler(uc usecase.IWorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc}
}

// Summary returns the grouped workflow view, recomputed from the latest
// persisted records on every call.
func (h *WorkflowHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Evaluate is the read-only eligibility endpoint consumed by the checkout
// flow before payment finalization.
func (h *WorkflowHandler) Evaluate(c *gin.Context) {
	item := entities.ItemRef{
		ID:   strings.TrimSpace(c.Query("item_id")),
		Kind: entities.ItemKind(strings.TrimSpace(c.Query("item_kind"))),
	}

	elig, err := h.usecase.Evaluate(c.Request.Context(), c.Param("conversation_id"), item, c.Query("variant_id"), c.Query("package_id"))
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, elig)
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationID), errors.Is(err, usecase.ErrInvalidItemRef):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

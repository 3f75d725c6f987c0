package handlers

import (
	"errors"
	"net/http"

	request "craftbridge/internal/adapter/http/dto/request"
	response "craftbridge/internal/adapter/http/dto/response"
	"craftbridge/internal/domain/entities"
	"craftbridge/internal/usecase"
	"craftbridge/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDesignPayload = pkg.NewDomainErrorSimple("INVALID_DESIGN_INPUT", "Invalid design approval payload", http.StatusBadRequest)

// DesignApprovalHandler handles HTTP requests for the design-approval
// workflow: buyer uploads and resubmissions, seller decisions.

type DesignApprovalHandler struct {
	usecase usecase.IDesignApprovalUseCase
}

func NewDesignApprovalHandler(uc usecase.IDesignApprovalUseCase) *DesignApprovalHandler {
	return &DesignApprovalHandler{usecase: uc}
}

// Create handles the buyer design upload for one scope.
func (h *DesignApprovalHandler) Create(c *gin.Context) {
	conversationID := c.Param("conversation_id")

	var payload request.CreateDesignApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), conversationID, payload.ResolveItemRef(), payload.ResolveScopeKey(), payload.ResolveFiles())
	if err != nil {
		appErr := mapDesignApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDesignApproval(created))
}

func (h *DesignApprovalHandler) Approve(c *gin.Context) {
	h.decide(c, entities.DesignActionApprove)
}

func (h *DesignApprovalHandler) Reject(c *gin.Context) {
	h.decide(c, entities.DesignActionReject)
}

func (h *DesignApprovalHandler) RequestChanges(c *gin.Context) {
	h.decide(c, entities.DesignActionRequestChanges)
}

func (h *DesignApprovalHandler) StartReview(c *gin.Context) {
	h.decide(c, entities.DesignActionStartReview)
}

func (h *DesignApprovalHandler) decide(c *gin.Context, action entities.DesignAction) {
	id := c.Param("id")

	// Notes body is optional for approve/start-review.
	var payload request.DesignDecisionRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
			return
		}
	}

	updated, err := h.usecase.Decide(c.Request.Context(), id, action, payload.Notes)
	if err != nil {
		appErr := mapDesignApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignApproval(updated))
}

// Resubmit handles the buyer's replacement upload after changes_requested.
func (h *DesignApprovalHandler) Resubmit(c *gin.Context) {
	id := c.Param("id")

	var payload request.ResubmitDesignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDesignPayload.HTTPStatus, errInvalidDesignPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Resubmit(c.Request.Context(), id, payload.ResolveFiles())
	if err != nil {
		appErr := mapDesignApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDesignApproval(updated))
}

func (h *DesignApprovalHandler) GetByID(c *gin.Context) {
	a, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDesignApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDesignApproval(a))
}

func (h *DesignApprovalHandler) ListByConversation(c *gin.Context) {
	items, err := h.usecase.ListByConversationID(c.Request.Context(), c.Param("conversation_id"))
	if err != nil {
		appErr := mapDesignApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDesignApprovals(items))
}

func mapDesignApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConversationID),
		errors.Is(err, usecase.ErrInvalidItemRef),
		errors.Is(err, usecase.ErrInvalidDesignApprovalID),
		errors.Is(err, usecase.ErrEmptyFiles),
		errors.Is(err, usecase.ErrUnknownDesignAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyRejectionReason):
		return pkg.NewDomainErrorSimple("REJECTION_REASON_REQUIRED", "A rejection reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyChangeNotes):
		return pkg.NewDomainErrorSimple("CHANGE_NOTES_REQUIRED", "Change request notes are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateActiveSubmission):
		return pkg.NewDomainErrorSimple("DUPLICATE_ACTIVE_SUBMISSION", "An active design submission already exists for this scope", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStateTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATE_TRANSITION", "Action not permitted from the current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The record changed while processing; reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDesignApprovalNotFound):
		return pkg.NewDomainErrorSimple("DESIGN_APPROVAL_NOT_FOUND", "Design approval not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

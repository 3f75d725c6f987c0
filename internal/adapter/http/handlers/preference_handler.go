package handlers

import (
	"errors"
	"net/http"

	request "craftbridge/internal/adapter/http/dto/request"
	response "craftbridge/internal/adapter/http/dto/response"
	"craftbridge/internal/usecase"
	"craftbridge/pkg"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler manages presentation-only conversation UI preferences.

type PreferenceHandler struct {
	usecase usecase.IPreferenceUseCase
}

func NewPreferenceHandler(uc usecase.IPreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{usecase: uc}
}

func (h *PreferenceHandler) Set(c *gin.Context) {
	var payload request.SetPreferenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	p, err := h.usecase.Set(c.Request.Context(), payload.UserID, c.Param("conversation_id"), payload.PanelCollapsed, payload.IntroDismissed)
	if err != nil {
		appErr := mapPreferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreference(p))
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	p, err := h.usecase.Get(c.Request.Context(), c.Query("user_id"), c.Param("conversation_id"))
	if err != nil {
		appErr := mapPreferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreference(p))
}

func mapPreferenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidConversationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"craftbridge/internal/adapter/http/handlers/mocks"
	"craftbridge/internal/domain/entities"
	"craftbridge/internal/domain/workflow"
	"craftbridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func workflowRouter(h *WorkflowHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/conversations/:conversation_id/workflow", h.Summary)
	r.GET("/v1/conversations/:conversation_id/eligibility", h.Evaluate)
	return r
}

func TestWorkflowHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Summary(gomock.Any(), "conv-1").Return(workflow.Summary{
			ConversationID:  "conv-1",
			DefaultScopeKey: "var-a",
			Scopes:          []workflow.ScopeGroup{{ScopeKey: "var-a"}, {ScopeKey: "var-b"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversations/conv-1/workflow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["conversation_id"] != "conv-1" || body["default_scope_key"] != "var-a" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid conversation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Summary(gomock.Any(), " ").Return(workflow.Summary{}, usecase.ErrInvalidConversationID)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversations/%20/workflow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Summary(gomock.Any(), "conv-1").Return(workflow.Summary{}, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/conversations/conv-1/workflow", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestWorkflowHandler_Evaluate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes query selection through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Evaluate(gomock.Any(), "conv-1", entities.ItemRef{ID: "item-1", Kind: entities.ItemKindProduct}, "var-a", "").
			Return(workflow.Eligibility{ScopeKey: "var-a", CanPurchase: true, ChargePrice: decimal.NewFromInt(100), Stage: workflow.StageReadyToPurchase}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversations/conv-1/eligibility?item_id=item-1&item_kind=product&variant_id=var-a", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["scope_key"] != "var-a" || body["can_purchase"] != true {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Evaluate(gomock.Any(), "conv-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(workflow.Eligibility{}, usecase.ErrItemNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversations/conv-1/eligibility?item_id=ghost&item_kind=product", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing item ref maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkflowUseCase(ctrl)
		r := workflowRouter(NewWorkflowHandler(uc))

		uc.EXPECT().Evaluate(gomock.Any(), "conv-1", entities.ItemRef{}, "", "").
			Return(workflow.Eligibility{}, usecase.ErrInvalidItemRef)

		req := httptest.NewRequest(http.MethodGet, "/v1/conversations/conv-1/eligibility", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

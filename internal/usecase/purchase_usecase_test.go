package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"craftbridge/internal/domain/entities"
	"craftbridge/internal/domain/workflow"
	mock_interfaces "craftbridge/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// stubWorkflow pins Evaluate to a fixed eligibility so finalization paths can
// be exercised without the full read stack.
type stubWorkflow struct {
	elig workflow.Eligibility
	err  error
}

func (s stubWorkflow) Summary(context.Context, string) (workflow.Summary, error) {
	return workflow.Summary{}, nil
}

func (s stubWorkflow) Evaluate(context.Context, string, entities.ItemRef, string, string) (workflow.Eligibility, error) {
	return s.elig, s.err
}

func readyEligibility() workflow.Eligibility {
	return workflow.Eligibility{
		ScopeKey:      "var-a",
		CanPurchase:   true,
		ChargePrice:   decimal.NewFromInt(100),
		ActiveQuoteID: "q-1",
		Stage:         workflow.StageReadyToPurchase,
	}
}

func TestPurchaseUseCase_Finalize_Validations(t *testing.T) {
	t.Run("invalid conversation", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil)
		_, err := uc.Finalize(context.Background(), " ", testItem, "", "", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidConversationID) {
			t.Fatalf("expected ErrInvalidConversationID, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil)
		_, err := uc.Finalize(context.Background(), "conv-1", entities.ItemRef{}, "", "", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidItemRef) {
			t.Fatalf("expected ErrInvalidItemRef, got %v", err)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil)
		_, err := uc.Finalize(context.Background(), "conv-1", testItem, "", "", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPayerPayload) {
			t.Fatalf("expected ErrInvalidPayerPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, stubWorkflow{}, nil)
		_, err := uc.Finalize(context.Background(), "conv-1", testItem, "", "", json.RawMessage(`{}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestPurchaseUseCase_Finalize_EligibilityGate(t *testing.T) {
	t.Run("not eligible means no charge and no record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		wf := stubWorkflow{elig: workflow.Eligibility{ScopeKey: "var-a", CanPurchase: false, Stage: workflow.StageAwaitingDesignApproval}}
		uc := NewPurchaseUseCase(repo, wf, gateway)

		// Neither the gateway nor the repository may be touched.
		_, err := uc.Finalize(context.Background(), "conv-1", testItem, "var-a", "", json.RawMessage(`{}`))
		if !errors.Is(err, ErrPurchaseNotEligible) {
			t.Fatalf("expected ErrPurchaseNotEligible, got %v", err)
		}
	})

	t.Run("evaluate error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(nil, stubWorkflow{err: errors.New("db")}, gateway)

		_, err := uc.Finalize(context.Background(), "conv-1", testItem, "var-a", "", json.RawMessage(`{}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPurchaseUseCase_Finalize_ChargesEnginePrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewPurchaseUseCase(repo, stubWorkflow{elig: readyEligibility()}, gateway)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var m map[string]any
			if err := json.Unmarshal(payload, &m); err != nil {
				t.Fatalf("payload not valid json: %v", err)
			}
			// Client-sent amount must be overwritten with the engine's price.
			if m["transaction_amount"] != 100.0 {
				t.Fatalf("expected transaction_amount 100, got %v", m["transaction_amount"])
			}
			if m["external_reference"] != "conv-1#var-a" {
				t.Fatalf("unexpected external_reference %v", m["external_reference"])
			}
			return "pay-1", "approved", json.RawMessage(`{"id":"pay-1","status":"approved"}`), nil
		},
	)
	repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Purchase{})).DoAndReturn(
		func(_ context.Context, p entities.Purchase) (entities.Purchase, error) {
			if p.ID != "pay-1" || p.ScopeKey != "var-a" || p.QuoteID != "q-1" {
				t.Fatalf("unexpected purchase: %+v", p)
			}
			if !p.ChargedPrice.Equal(decimal.NewFromInt(100)) {
				t.Fatalf("expected charged price 100, got %s", p.ChargedPrice)
			}
			if p.Status != entities.PurchaseStatusApproved {
				t.Fatalf("expected approved, got %s", p.Status)
			}
			return p, nil
		},
	)

	res, err := uc.Finalize(context.Background(), "conv-1", testItem, "var-a", "", json.RawMessage(`{"transaction_amount":1,"payment_method_id":"pix"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ID != "pay-1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPurchaseUseCase_Finalize_GatewayErrors(t *testing.T) {
	cases := []struct {
		name    string
		gray    error
		wantErr error
	}{
		{name: "bad request", gray: errors.New(`api error: {"error":"bad_request","status":400}`), wantErr: ErrPaymentGatewayBadRequest},
		{name: "unauthorized", gray: errors.New(`api error: {"error":"unauthorized","status":401}`), wantErr: ErrPaymentGatewayUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPurchaseUseCase(repo, stubWorkflow{elig: readyEligibility()}, gateway)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.gray)

			_, err := uc.Finalize(context.Background(), "conv-1", testItem, "var-a", "", json.RawMessage(`{}`))
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	t.Run("opaque error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPurchaseUseCase(repo, stubWorkflow{elig: readyEligibility()}, gateway)

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("network down"))

		_, err := uc.Finalize(context.Background(), "conv-1", testItem, "var-a", "", json.RawMessage(`{}`))
		if err == nil || err.Error() != "network down" {
			t.Fatalf("expected network down, got %v", err)
		}
	})
}

func TestPurchaseUseCase_Getters(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Purchase{}, nil)

		_, err := uc.GetByID(context.Background(), "pay-1")
		if !errors.Is(err, ErrPurchaseNotFound) {
			t.Fatalf("expected ErrPurchaseNotFound, got %v", err)
		}
	})

	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPurchaseUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPurchaseID) {
			t.Fatalf("expected ErrInvalidPurchaseID, got %v", err)
		}
	})

	t.Run("List success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPurchaseRepository(ctrl)
		uc := NewPurchaseUseCase(repo, nil, nil)
		repo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return([]entities.Purchase{{ID: "pay-1"}}, nil)

		res, err := uc.ListByConversationID(context.Background(), "conv-1")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})
}

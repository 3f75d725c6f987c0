package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"craftbridge/internal/domain/entities"
	mock_interfaces "craftbridge/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func quoteDeps(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIQuoteRepository, *mock_interfaces.MockIDesignApprovalRepository, *mock_interfaces.MockIItemCatalog, *QuoteUseCase) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
	approvalRepo := mock_interfaces.NewMockIDesignApprovalRepository(ctrl)
	catalog := mock_interfaces.NewMockIItemCatalog(ctrl)
	return ctrl, repo, approvalRepo, catalog, NewQuoteUseCase(repo, approvalRepo, catalog)
}

func TestQuoteUseCase_Issue_Validations(t *testing.T) {
	price := decimal.NewFromInt(100)

	t.Run("invalid conversation", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Issue(context.Background(), "  ", testItem, "var-a", price, 1, nil, "")
		if !errors.Is(err, ErrInvalidConversationID) {
			t.Fatalf("expected ErrInvalidConversationID, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Issue(context.Background(), "conv-1", entities.ItemRef{}, "var-a", price, 1, nil, "")
		if !errors.Is(err, ErrInvalidItemRef) {
			t.Fatalf("expected ErrInvalidItemRef, got %v", err)
		}
	})

	t.Run("zero price", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", decimal.Zero, 1, nil, "")
		if !errors.Is(err, ErrInvalidQuotePrice) {
			t.Fatalf("expected ErrInvalidQuotePrice, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", decimal.NewFromInt(-5), 1, nil, "")
		if !errors.Is(err, ErrInvalidQuotePrice) {
			t.Fatalf("expected ErrInvalidQuotePrice, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 0, nil, "")
		if !errors.Is(err, ErrInvalidQuoteQuantity) {
			t.Fatalf("expected ErrInvalidQuoteQuantity, got %v", err)
		}
	})

	t.Run("item not in catalog", func(t *testing.T) {
		ctrl, _, _, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(entities.Item{}, nil)

		_, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 1, nil, "")
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Issue_DesignFirst(t *testing.T) {
	price := decimal.NewFromInt(100)
	catalogItem := entities.Item{ID: "item-1", Kind: entities.ItemKindProduct, RequiresDesignApproval: true, RequiresQuote: true, ListPrice: decimal.NewFromInt(40)}

	t.Run("blocked without approved design", func(t *testing.T) {
		ctrl, _, approvalRepo, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(catalogItem, nil)
		approvalRepo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return([]entities.DesignApproval{
			{ID: "da-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.DesignStatusUnderReview},
		}, nil)

		_, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 1, nil, "")
		if !errors.Is(err, ErrDesignApprovalRequired) {
			t.Fatalf("expected ErrDesignApprovalRequired, got %v", err)
		}
	})

	t.Run("approved design links the quote", func(t *testing.T) {
		ctrl, repo, approvalRepo, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		approvedAt := time.Now().UTC().Add(-time.Hour)
		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(catalogItem, nil)
		approvalRepo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return([]entities.DesignApproval{
			{ID: "da-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.DesignStatusApproved, ApprovedAt: &approvedAt},
		}, nil)
		repo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.LinkedDesignApprovalID != "da-1" {
					t.Fatalf("expected link to da-1, got %q", q.LinkedDesignApprovalID)
				}
				if q.Status != entities.QuoteStatusSent || !q.QuotedPrice.Equal(price) || q.Quantity != 1 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				return q, nil
			},
		)

		res, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 1, nil, " rush job ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" || res.Notes != "rush job" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("quote-only item never requires design", func(t *testing.T) {
		ctrl, repo, approvalRepo, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		quoteOnly := entities.Item{ID: "item-1", Kind: entities.ItemKindProduct, RequiresQuote: true, ListPrice: decimal.NewFromInt(40)}
		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(quoteOnly, nil)
		approvalRepo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return(nil, nil)
		repo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		if _, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 1, nil, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Issue_SupersedesSent(t *testing.T) {
	price := decimal.NewFromInt(120)
	catalogItem := entities.Item{ID: "item-1", Kind: entities.ItemKindProduct, RequiresQuote: true, ListPrice: decimal.NewFromInt(40)}

	t.Run("existing sent quote updated in place", func(t *testing.T) {
		ctrl, repo, approvalRepo, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(catalogItem, nil)
		approvalRepo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return(nil, nil)
		repo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return([]entities.Quote{
			{ID: "q-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.QuoteStatusSent},
		}, nil)
		repo.EXPECT().UpdateSent(gomock.Any(), "q-1", price, 2, nil, "", "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent, QuotedPrice: price, Quantity: 2}, nil)

		res, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 2, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "q-1" || !res.QuotedPrice.Equal(price) {
			t.Fatalf("expected superseded q-1, got %+v", res)
		}
	})

	t.Run("terminal quote gets a new record", func(t *testing.T) {
		ctrl, repo, approvalRepo, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(catalogItem, nil)
		approvalRepo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return(nil, nil)
		repo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return([]entities.Quote{
			{ID: "q-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.QuoteStatusRejected},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		res, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 1, nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "q-1" {
			t.Fatalf("rejected quote must not be reused")
		}
	})

	t.Run("supersede lost race", func(t *testing.T) {
		ctrl, repo, approvalRepo, catalog, uc := quoteDeps(t)
		defer ctrl.Finish()

		catalog.EXPECT().GetItem(gomock.Any(), "item-1", entities.ItemKindProduct).Return(catalogItem, nil)
		approvalRepo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return(nil, nil)
		repo.EXPECT().ListByConversationID(gomock.Any(), "conv-1").Return([]entities.Quote{
			{ID: "q-1", ItemID: "item-1", ItemKind: entities.ItemKindProduct, ScopeKey: "var-a", Status: entities.QuoteStatusSent},
		}, nil)
		repo.EXPECT().UpdateSent(gomock.Any(), "q-1", price, 1, nil, "", "").Return(entities.Quote{}, nil)

		_, err := uc.Issue(context.Background(), "conv-1", testItem, "var-a", price, 1, nil, "")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestQuoteUseCase_Respond(t *testing.T) {
	t.Run("unknown action", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.Respond(context.Background(), "q-1", entities.QuoteAction("withdraw"), "")
		if !errors.Is(err, ErrUnknownQuoteAction) {
			t.Fatalf("expected ErrUnknownQuoteAction, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.Respond(context.Background(), "q-1", entities.QuoteActionAccept, "")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("already accepted", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		_, err := uc.Respond(context.Background(), "q-1", entities.QuoteActionAccept, "")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("expired by deadline", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		past := time.Now().UTC().Add(-time.Minute)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent, ExpiresAt: &past}, nil)

		_, err := uc.Respond(context.Background(), "q-1", entities.QuoteActionAccept, "")
		if !errors.Is(err, ErrInvalidStateTransition) {
			t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
		}
	})

	t.Run("accept success", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, entities.QuoteStatusAccepted, "").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		res, err := uc.Respond(context.Background(), "q-1", entities.QuoteActionAccept, "")
		if err != nil || res.Status != entities.QuoteStatusAccepted {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("reject carries reason", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, entities.QuoteStatusRejected, "too expensive").
			Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusRejected, BuyerReason: "too expensive"}, nil)

		res, err := uc.Respond(context.Background(), "q-1", entities.QuoteActionReject, " too expensive ")
		if err != nil || res.BuyerReason != "too expensive" {
			t.Fatalf("unexpected result: %+v err=%v", res, err)
		}
	})

	t.Run("double accept lost race", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q-1", entities.QuoteStatusSent, entities.QuoteStatusAccepted, "").Return(entities.Quote{}, nil)

		_, err := uc.Respond(context.Background(), "q-1", entities.QuoteActionAccept, "")
		if !errors.Is(err, ErrConcurrentModification) {
			t.Fatalf("expected ErrConcurrentModification, got %v", err)
		}
	})
}

func TestQuoteUseCase_Getters(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		ctrl, repo, _, _, uc := quoteDeps(t)
		defer ctrl.Finish()
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("List invalid conversation", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil)
		_, err := uc.ListByConversationID(context.Background(), "")
		if !errors.Is(err, ErrInvalidConversationID) {
			t.Fatalf("expected ErrInvalidConversationID, got %v", err)
		}
	})
}

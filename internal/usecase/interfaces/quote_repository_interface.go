package interfaces

import (
	"context"
	"time"

	"craftbridge/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateSent supersedes a still-sent quote in place (price/quantity/expiry/
// notes) and UpdateStatus applies a buyer response; both are conditional on
// the stored status still being expected and return a zero-value record with
// nil error when the condition fails.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.Quote, error)
	UpdateSent(ctx context.Context, id string, price decimal.Decimal, quantity int, expiresAt *time.Time, notes, linkedDesignApprovalID string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.QuoteStatus, buyerReason string) (entities.Quote, error)
}

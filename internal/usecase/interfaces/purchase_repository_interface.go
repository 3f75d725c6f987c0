package interfaces

import (
	"context"

	"craftbridge/internal/domain/entities"
)

// IPurchaseRepository abstracts DynamoDB persistence for Purchase.

type IPurchaseRepository interface {
	Create(ctx context.Context, p entities.Purchase) (entities.Purchase, error)
	GetByID(ctx context.Context, id string) (entities.Purchase, error)
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.Purchase, error)
}

package interfaces

import (
	"context"
	"time"

	"craftbridge/internal/domain/entities"
)

// IDesignApprovalRepository abstracts DynamoDB persistence for DesignApproval.
//
// Conditional semantics the use cases rely on:
//   - Create fails when the id already exists.
//   - UpdateStatus and Resubmit apply only when the stored status still equals
//     expected; on a conditional-check failure they return a zero-value record
//     and nil error, which the use case surfaces as a concurrent modification.

type IDesignApprovalRepository interface {
	Create(ctx context.Context, a entities.DesignApproval) (entities.DesignApproval, error)
	GetByID(ctx context.Context, id string) (entities.DesignApproval, error)
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.DesignApproval, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.DesignApprovalStatus, sellerNotes string, approvedAt *time.Time) (entities.DesignApproval, error)
	Resubmit(ctx context.Context, id string, expected entities.DesignApprovalStatus, files []entities.FileRef) (entities.DesignApproval, error)
}

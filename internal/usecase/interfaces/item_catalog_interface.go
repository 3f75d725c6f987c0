package interfaces

import (
	"context"

	"craftbridge/internal/domain/entities"
)

// IItemCatalog is the read-only view of the listing catalog: requirement
// flags and list price per item. The catalog service owns the records; this
// core never writes them. A missing item comes back as a zero-value entity.

type IItemCatalog interface {
	GetItem(ctx context.Context, itemID string, kind entities.ItemKind) (entities.Item, error)
}

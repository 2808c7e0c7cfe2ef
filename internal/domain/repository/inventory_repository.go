package repository

import (
	"context"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// InventoryRepository define el puerto de persistencia para InventoryItem.
type InventoryRepository interface {
	TableRepository[entity.InventoryItem, entity.InventoryItemPatch]
	// ListBelowReorderLevel devuelve los artículos con quantity <= reorder_level.
	ListBelowReorderLevel(ctx context.Context, merchantID string) ([]entity.InventoryItem, error)
}

package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// LowStockSource artículos del comercio en o bajo su punto de reorden.
type LowStockSource interface {
	ListBelowReorderLevel(ctx context.Context, merchantID string) ([]entity.InventoryItem, error)
}

// ReplenishmentUseCase genera la lista de reposición del inventario del comercio.
type ReplenishmentUseCase struct {
	items LowStockSource
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(items LowStockSource) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{items: items}
}

var idealFactor = decimal.NewFromFloat(1.5)

// GenerateReplenishmentList devuelve los artículos con quantity <= reorder_level, con la
// cantidad sugerida de pedido (reorder_level * 1.5 - quantity) y prioridad por déficit.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, merchantID string) ([]dto.LowStockItemDTO, error) {
	rawItems, err := uc.items.ListBelowReorderLevel(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	suggestions := make([]dto.LowStockItemDTO, 0, len(rawItems))
	for _, item := range rawItems {
		if !item.BelowReorderLevel() {
			continue
		}
		idealStock := decimal.NewFromInt(int64(item.ReorderLevel)).Mul(idealFactor)
		suggestedQty := idealStock.Sub(decimal.NewFromInt(int64(item.Quantity)))
		if suggestedQty.LessThanOrEqual(decimal.Zero) {
			suggestedQty = decimal.Zero
		}
		suggestions = append(suggestions, dto.LowStockItemDTO{
			ID:                 item.ID,
			ItemCode:           item.ItemCode,
			Name:               item.Name,
			Quantity:           item.Quantity,
			ReorderLevel:       item.ReorderLevel,
			ReorderTimeline:    item.ReorderTimeline,
			IdealStock:         idealStock,
			SuggestedOrderQty:  suggestedQty,
			UnitCost:           item.UnitCost,
			EstimatedOrderCost: suggestedQty.Mul(item.UnitCost),
		})
	}

	// Mayor déficit primero; a igual déficit, el de reposición más lenta.
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		defA := a.ReorderLevel - a.Quantity
		defB := b.ReorderLevel - b.Quantity
		if defA != defB {
			return defA > defB
		}
		return a.ReorderTimeline > b.ReorderTimeline
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

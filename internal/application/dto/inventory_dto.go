package dto

import "github.com/shopspring/decimal"

// CreateInventoryItemRequest body para POST /api/inventory.
type CreateInventoryItemRequest struct {
	ItemCode        string          `json:"item_id" validate:"omitempty,max=64"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description" validate:"omitempty,max=1000"`
	Quantity        int             `json:"quantity" validate:"min=0"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	ReorderLevel    int             `json:"reorder_level" validate:"min=0"`
	ReorderTimeline int             `json:"reorder_timeline" validate:"min=0"`
}

// UpdateInventoryItemRequest body para PUT /api/inventory/:id. Campos ausentes no cambian.
type UpdateInventoryItemRequest struct {
	ItemCode        *string          `json:"item_id" validate:"omitempty,max=64"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description" validate:"omitempty,max=1000"`
	Quantity        *int             `json:"quantity" validate:"omitempty,min=0"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	ReorderLevel    *int             `json:"reorder_level" validate:"omitempty,min=0"`
	ReorderTimeline *int             `json:"reorder_timeline" validate:"omitempty,min=0"`
}

// LowStockItemDTO artículo en o por debajo de su punto de reorden.
type LowStockItemDTO struct {
	ID                 string          `json:"id"`
	ItemCode           string          `json:"item_id,omitempty"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	ReorderLevel       int             `json:"reorder_level"`
	ReorderTimeline    int             `json:"reorder_timeline"`
	IdealStock         decimal.Decimal `json:"ideal_stock"`          // ReorderLevel * 1.5
	SuggestedOrderQty  decimal.Decimal `json:"suggested_order_qty"`  // IdealStock - Quantity
	UnitCost           decimal.Decimal `json:"unit_cost"`
	EstimatedOrderCost decimal.Decimal `json:"estimated_order_cost"` // SuggestedOrderQty * UnitCost
	Priority           int             `json:"priority"`             // 1 = más urgente
}

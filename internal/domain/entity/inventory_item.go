package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario del comercio.
// ReorderLevel es la cantidad mínima antes de reponer; ReorderTimeline son días de reposición.
type InventoryItem struct {
	ID              string          `json:"id"`
	MerchantID      string          `json:"merchant_id"`
	ItemCode        string          `json:"item_id,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	ReorderLevel    int             `json:"reorder_level"`
	ReorderTimeline int             `json:"reorder_timeline"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BelowReorderLevel indica si la cantidad disponible ya alcanzó el punto de reorden.
func (i InventoryItem) BelowReorderLevel() bool {
	return i.Quantity <= i.ReorderLevel
}

// InventoryItemPatch cambios parciales sobre un artículo. nil = sin cambio.
type InventoryItemPatch struct {
	ItemCode        *string          `json:"item_id,omitempty"`
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Quantity        *int             `json:"quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	ReorderLevel    *int             `json:"reorder_level,omitempty"`
	ReorderTimeline *int             `json:"reorder_timeline,omitempty"`
}

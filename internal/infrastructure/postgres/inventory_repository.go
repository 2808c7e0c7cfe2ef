package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository.
type InventoryRepo struct {
	*Table[entity.InventoryItem, entity.InventoryItemPatch]
	q Querier
}

const inventoryColumns = `id, merchant_id, item_code, name, description, quantity, unit_price, unit_cost,
	reorder_level, reorder_timeline, created_at, updated_at`

func scanInventoryItem(row pgx.Row, i *entity.InventoryItem) error {
	return row.Scan(&i.ID, &i.MerchantID, &i.ItemCode, &i.Name, &i.Description, &i.Quantity,
		&i.UnitPrice, &i.UnitCost, &i.ReorderLevel, &i.ReorderTimeline, &i.CreatedAt, &i.UpdatedAt)
}

var inventorySpec = TableSpec[entity.InventoryItem, entity.InventoryItemPatch]{
	Table:   "inventory",
	Entity:  "inventory item",
	Columns: inventoryColumns,
	OrderBy: "name",
	Scan:    scanInventoryItem,
	Values: func(i *entity.InventoryItem) []Assignment {
		return []Assignment{
			{"item_code", i.ItemCode},
			{"name", i.Name},
			{"description", i.Description},
			{"quantity", i.Quantity},
			{"unit_price", i.UnitPrice},
			{"unit_cost", i.UnitCost},
			{"reorder_level", i.ReorderLevel},
			{"reorder_timeline", i.ReorderTimeline},
		}
	},
	Patch: func(p entity.InventoryItemPatch) []Assignment {
		var out []Assignment
		out = appendIf(out, "item_code", p.ItemCode)
		out = appendIf(out, "name", p.Name)
		out = appendIf(out, "description", p.Description)
		out = appendIf(out, "quantity", p.Quantity)
		out = appendIf(out, "unit_price", p.UnitPrice)
		out = appendIf(out, "unit_cost", p.UnitCost)
		out = appendIf(out, "reorder_level", p.ReorderLevel)
		out = appendIf(out, "reorder_timeline", p.ReorderTimeline)
		return out
	},
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{Table: NewTable(q, inventorySpec), q: q}
}

// ListBelowReorderLevel artículos con quantity <= reorder_level, los más faltantes primero.
func (r *InventoryRepo) ListBelowReorderLevel(ctx context.Context, merchantID string) ([]entity.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory
		WHERE merchant_id = $1 AND quantity <= reorder_level
		ORDER BY (reorder_level - quantity) DESC, name`
	rows, err := r.q.Query(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	list := []entity.InventoryItem{}
	for rows.Next() {
		var i entity.InventoryItem
		if err := scanInventoryItem(rows, &i); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

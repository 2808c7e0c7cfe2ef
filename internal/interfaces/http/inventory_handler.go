package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/inventory"
	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/application/store"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// InventoryHandler CRUD de artículos del inventario.
type InventoryHandler = TableHandler[entity.InventoryItem, entity.InventoryItemPatch]

// NewInventoryHandler construye el handler.
func NewInventoryHandler(repo repository.InventoryRepository, n ports.Notifier) *InventoryHandler {
	return &InventoryHandler{
		newStore: func(col ports.Notifier, merchantID string, _ int) *store.InventoryStore {
			return store.NewInventoryStore(repo, col, merchantID)
		},
		decodeCreate: decodeInventoryItem,
		decodeUpdate: decodeInventoryPatch,
		present:      identity[entity.InventoryItem],
		notifier:     n,
	}
}

func decodeInventoryItem(c *fiber.Ctx) (*entity.InventoryItem, error) {
	var in dto.CreateInventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return nil, err
	}
	if in.UnitPrice.IsNegative() || in.UnitCost.IsNegative() {
		return nil, invalidRequest("VALIDATION", "unit_price y unit_cost no pueden ser negativos")
	}
	return &entity.InventoryItem{
		ItemCode:        in.ItemCode,
		Name:            in.Name,
		Description:     in.Description,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		UnitCost:        in.UnitCost,
		ReorderLevel:    in.ReorderLevel,
		ReorderTimeline: in.ReorderTimeline,
	}, nil
}

func decodeInventoryPatch(c *fiber.Ctx) (entity.InventoryItemPatch, error) {
	var in dto.UpdateInventoryItemRequest
	if err := parseBody(c, &in); err != nil {
		return entity.InventoryItemPatch{}, err
	}
	if (in.UnitPrice != nil && in.UnitPrice.IsNegative()) || (in.UnitCost != nil && in.UnitCost.IsNegative()) {
		return entity.InventoryItemPatch{}, invalidRequest("VALIDATION", "unit_price y unit_cost no pueden ser negativos")
	}
	return entity.InventoryItemPatch{
		ItemCode:        in.ItemCode,
		Name:            in.Name,
		Description:     in.Description,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		UnitCost:        in.UnitCost,
		ReorderLevel:    in.ReorderLevel,
		ReorderTimeline: in.ReorderTimeline,
	}, nil
}

// ReplenishmentHandler reporte de reposición de inventario.
type ReplenishmentHandler struct {
	uc *inventory.ReplenishmentUseCase
}

// NewReplenishmentHandler construye el handler.
func NewReplenishmentHandler(uc *inventory.ReplenishmentUseCase) *ReplenishmentHandler {
	return &ReplenishmentHandler{uc: uc}
}

// LowStock GET /api/inventory/low-stock
//
// Artículos con quantity <= reorder_level, con cantidad sugerida de pedido y prioridad.
func (h *ReplenishmentHandler) LowStock(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	list, err := h.uc.GenerateReplenishmentList(c.Context(), merchantID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/application/inventory"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

type stubLowStock struct {
	items []entity.InventoryItem
	err   error
}

func (s stubLowStock) ListBelowReorderLevel(_ context.Context, _ string) ([]entity.InventoryItem, error) {
	return s.items, s.err
}

func TestGenerateReplenishmentList_CantidadYPrioridad(t *testing.T) {
	uc := inventory.NewReplenishmentUseCase(stubLowStock{items: []entity.InventoryItem{
		{ID: "a", Name: "Arroz", Quantity: 8, ReorderLevel: 10, UnitCost: decimal.NewFromInt(2)},
		{ID: "b", Name: "Azúcar", Quantity: 0, ReorderLevel: 10, UnitCost: decimal.NewFromInt(3)},
		{ID: "c", Name: "Sal", Quantity: 5, ReorderLevel: 5, UnitCost: decimal.NewFromInt(1)},
	}})

	got, err := uc.GenerateReplenishmentList(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "b", got[0].ID, "el mayor déficit primero")
	assert.Equal(t, 1, got[0].Priority)
	assert.True(t, decimal.NewFromInt(15).Equal(got[0].SuggestedOrderQty), "10*1.5 - 0")
	assert.True(t, decimal.NewFromInt(45).Equal(got[0].EstimatedOrderCost))

	assert.Equal(t, "a", got[1].ID)
	assert.True(t, decimal.NewFromInt(7).Equal(got[1].SuggestedOrderQty), "15 - 8")

	assert.Equal(t, "c", got[2].ID, "quantity == reorder_level también entra")
	assert.True(t, decimal.RequireFromString("2.5").Equal(got[2].SuggestedOrderQty))
}

func TestGenerateReplenishmentList_SinArticulos(t *testing.T) {
	uc := inventory.NewReplenishmentUseCase(stubLowStock{})
	got, err := uc.GenerateReplenishmentList(context.Background(), "m1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerateReplenishmentList_ErrorDeLectura(t *testing.T) {
	uc := inventory.NewReplenishmentUseCase(stubLowStock{err: errors.New("db")})
	_, err := uc.GenerateReplenishmentList(context.Background(), "m1")
	assert.Error(t, err)
}

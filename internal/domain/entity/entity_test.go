package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

func TestMerchant_Initials(t *testing.T) {
	assert.Equal(t, "AN", entity.Merchant{Email: "ana@tienda.com"}.Initials())
	assert.Equal(t, "?", entity.Merchant{}.Initials(), "sin email")
	assert.Equal(t, "X", entity.Merchant{Email: "x"}.Initials())
	assert.Equal(t, "ÑA", entity.Merchant{Email: "ñandú@x.com"}.Initials(), "cuenta runas, no bytes")
}

func TestCreditSale_AmountDue(t *testing.T) {
	s := entity.CreditSale{TotalAmount: decimal.RequireFromString("150.75"), PaidAmount: decimal.RequireFromString("50.25")}
	assert.True(t, decimal.RequireFromString("100.50").Equal(s.AmountDue()))

	assert.True(t, entity.CreditSale{TotalAmount: decimal.NewFromInt(10)}.AmountDue().Equal(decimal.NewFromInt(10)),
		"paid_amount sin valor cuenta como cero")
}

func TestInventoryItem_BelowReorderLevel(t *testing.T) {
	assert.True(t, entity.InventoryItem{Quantity: 5, ReorderLevel: 5}.BelowReorderLevel(), "igual al punto de reorden")
	assert.True(t, entity.InventoryItem{Quantity: 2, ReorderLevel: 5}.BelowReorderLevel())
	assert.False(t, entity.InventoryItem{Quantity: 6, ReorderLevel: 5}.BelowReorderLevel())
}

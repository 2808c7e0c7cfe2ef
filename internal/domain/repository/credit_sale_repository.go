package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreditSaleRepository define el puerto de persistencia para CreditSale (con join a customers).
type CreditSaleRepository interface {
	TableRepository[entity.CreditSale, entity.CreditSalePatch]
	// GetByID obtiene una venta del comercio. Devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, merchantID, id string) (*entity.CreditSale, error)
	// ListOverdueSince lista ventas en estado overdue con due_date posterior a since.
	ListOverdueSince(ctx context.Context, merchantID string, since time.Time) ([]entity.CreditSale, error)
	// ListMerchantsWithOverdue devuelve los comercios con al menos una venta overdue posterior a since.
	ListMerchantsWithOverdue(ctx context.Context, since time.Time) ([]string, error)
	// Totals saldo pendiente total, saldo vencido y cantidad de ventas vencidas.
	Totals(ctx context.Context, merchantID string) (CreditTotals, error)
}

// CreditTotals agregados de cartera para el dashboard.
type CreditTotals struct {
	Outstanding  decimal.Decimal
	Overdue      decimal.Decimal
	OverdueCount int
}

package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/application/analytics"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

type stubTotals struct {
	t   repository.CreditTotals
	err error
}

func (s stubTotals) Totals(context.Context, string) (repository.CreditTotals, error) { return s.t, s.err }

type stubCounter struct{ n int }

func (s stubCounter) CountSentSince(context.Context, string, time.Time) (int, error) { return s.n, nil }

type stubStock struct{ items []entity.InventoryItem }

func (s stubStock) ListBelowReorderLevel(context.Context, string) ([]entity.InventoryItem, error) {
	return s.items, nil
}

type stubSettings struct{ row *entity.StoreSettings }

func (s stubSettings) GetByMerchant(context.Context, string) (*entity.StoreSettings, error) {
	return s.row, nil
}

func TestGetSummary_FormateaConLaMonedaDelComercio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		stubTotals{t: repository.CreditTotals{
			Outstanding:  decimal.RequireFromString("1234.5"),
			Overdue:      decimal.NewFromInt(200),
			OverdueCount: 3,
		}},
		stubCounter{n: 7},
		stubStock{items: make([]entity.InventoryItem, 2)},
		stubSettings{row: &entity.StoreSettings{Currency: "EUR", CurrencySymbol: "€"}},
	)

	got, err := uc.GetSummary(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, "1.234,50\u00a0€", got.OutstandingFormatted)
	assert.Equal(t, "200,00\u00a0€", got.OverdueFormatted)
	assert.Equal(t, 3, got.OverdueCount)
	assert.Equal(t, 7, got.RemindersSentLast30Days)
	assert.Equal(t, 2, got.LowStockCount)
}

func TestGetSummary_SinConfiguracionUsaUSD(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		stubTotals{t: repository.CreditTotals{Outstanding: decimal.NewFromInt(1000)}},
		stubCounter{}, stubStock{}, stubSettings{},
	)

	got, err := uc.GetSummary(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, "$1,000.00", got.OutstandingFormatted)
	assert.Equal(t, "$0.00", got.OverdueFormatted)
}

func TestGetSummary_ErrorDeTotales(t *testing.T) {
	uc := analytics.NewDashboardUseCase(
		stubTotals{err: errors.New("db")}, stubCounter{}, stubStock{}, stubSettings{},
	)
	_, err := uc.GetSummary(context.Background(), "m1")
	assert.Error(t, err)
}

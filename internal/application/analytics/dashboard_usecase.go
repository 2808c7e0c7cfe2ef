// Package analytics contiene el resumen de cartera del comercio (dashboard).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Creditos-api/internal/application/currency"
	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

const remindersWindow = 30 * 24 * time.Hour

// TotalsSource agregados de ventas a crédito.
type TotalsSource interface {
	Totals(ctx context.Context, merchantID string) (repository.CreditTotals, error)
}

// ReminderCounter recordatorios enviados en un período.
type ReminderCounter interface {
	CountSentSince(ctx context.Context, merchantID string, since time.Time) (int, error)
}

// LowStockSource artículos bajo punto de reorden.
type LowStockSource interface {
	ListBelowReorderLevel(ctx context.Context, merchantID string) ([]entity.InventoryItem, error)
}

// DashboardUseCase genera el resumen de cartera del comercio.
// Solo lecturas; los montos se formatean con la moneda guardada del comercio.
type DashboardUseCase struct {
	sales     TotalsSource
	reminders ReminderCounter
	stock     LowStockSource
	settings  currency.SettingsReader
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(sales TotalsSource, reminders ReminderCounter, stock LowStockSource, settings currency.SettingsReader) *DashboardUseCase {
	return &DashboardUseCase{sales: sales, reminders: reminders, stock: stock, settings: settings, now: time.Now}
}

// GetSummary construye el CreditDashboardDTO del comercio.
//
// Cuatro lecturas en paralelo:
//  1. Totals                    → saldo pendiente, vencido y cantidad vencida
//  2. CountSentSince(30 días)   → recordatorios enviados
//  3. ListBelowReorderLevel     → artículos a reponer
//  4. LoadSettings              → moneda para formatear
func (uc *DashboardUseCase) GetSummary(ctx context.Context, merchantID string) (*dto.CreditDashboardDTO, error) {
	type totalsResult struct {
		totals repository.CreditTotals
		err    error
	}
	type countResult struct {
		n   int
		err error
	}

	totalsCh := make(chan totalsResult, 1)
	remindersCh := make(chan countResult, 1)
	stockCh := make(chan countResult, 1)
	settingsCh := make(chan error, 1)

	formatter := currency.NewFormatter(uc.settings, merchantID)

	go func() {
		t, err := uc.sales.Totals(ctx, merchantID)
		totalsCh <- totalsResult{t, err}
	}()
	go func() {
		n, err := uc.reminders.CountSentSince(ctx, merchantID, uc.now().Add(-remindersWindow))
		remindersCh <- countResult{n, err}
	}()
	go func() {
		items, err := uc.stock.ListBelowReorderLevel(ctx, merchantID)
		stockCh <- countResult{len(items), err}
	}()
	go func() {
		settingsCh <- formatter.LoadSettings(ctx)
	}()

	totals := <-totalsCh
	sent := <-remindersCh
	stock := <-stockCh
	settingsErr := <-settingsCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: totales de cartera: %w", totals.err)
	}
	if sent.err != nil {
		return nil, fmt.Errorf("dashboard: recordatorios enviados: %w", sent.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: inventario bajo: %w", stock.err)
	}
	if settingsErr != nil {
		return nil, fmt.Errorf("dashboard: %w", settingsErr)
	}

	outstanding, err := formatter.Format(totals.totals.Outstanding, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard: formatear saldo: %w", err)
	}
	overdue, err := formatter.Format(totals.totals.Overdue, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard: formatear vencido: %w", err)
	}

	return &dto.CreditDashboardDTO{
		Currency:                formatter.Code(),
		Outstanding:             totals.totals.Outstanding.Round(2),
		OutstandingFormatted:    outstanding,
		Overdue:                 totals.totals.Overdue.Round(2),
		OverdueFormatted:        overdue,
		OverdueCount:            totals.totals.OverdueCount,
		RemindersSentLast30Days: sent.n,
		LowStockCount:           stock.n,
	}, nil
}

// Package report genera documentos descargables de la cartera: estado de cuenta en PDF
// por venta y la planilla de ventas a crédito.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Creditos-api/internal/application/currency"
	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// StatementUseCase estado de cuenta de una venta: montos, vencimiento e historial de recordatorios.
type StatementUseCase struct {
	sales     repository.CreditSaleRepository
	reminders repository.ReminderRepository
	merchants repository.MerchantRepository
	settings  currency.SettingsReader
	generator StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso inyectando todas sus dependencias.
func NewStatementUseCase(
	sales repository.CreditSaleRepository,
	reminders repository.ReminderRepository,
	merchants repository.MerchantRepository,
	settings currency.SettingsReader,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		sales:     sales,
		reminders: reminders,
		merchants: merchants,
		settings:  settings,
		generator: generator,
	}
}

// DownloadStatementPDF genera el PDF de la venta saleID del comercio.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si la venta no existe para el comercio.
func (uc *StatementUseCase) DownloadStatementPDF(ctx context.Context, merchantID, saleID string) ([]byte, string, error) {
	sale, err := uc.sales.GetByID(ctx, merchantID, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("estado de cuenta: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	history, err := uc.reminders.ListBySale(ctx, merchantID, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("estado de cuenta: recordatorios: %w", err)
	}

	formatter := currency.NewFormatter(uc.settings, merchantID)
	if err := formatter.LoadSettings(ctx); err != nil {
		return nil, "", fmt.Errorf("estado de cuenta: %w", err)
	}
	total, err := formatter.Format(sale.TotalAmount, "")
	if err != nil {
		return nil, "", err
	}
	paid, err := formatter.Format(sale.PaidAmount, "")
	if err != nil {
		return nil, "", err
	}
	due, err := formatter.Format(sale.AmountDue(), "")
	if err != nil {
		return nil, "", err
	}

	storeName := ""
	if m, err := uc.merchants.GetByID(merchantID); err == nil && m != nil {
		storeName = m.StoreName
		if storeName == "" {
			storeName = m.Email
		}
	}

	pdfBytes, err := uc.generator.GenerateStatementPDF(ctx, &dto.StatementData{
		StoreName:      storeName,
		Sale:           *sale,
		FormattedTotal: total,
		FormattedPaid:  paid,
		FormattedDue:   due,
		Reminders:      history,
		GeneratedAt:    time.Now(),
	})
	if err != nil {
		return nil, "", err
	}
	return pdfBytes, fmt.Sprintf("estado-cuenta-%s.pdf", sale.ID), nil
}

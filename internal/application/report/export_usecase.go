package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// ExportUseCase planilla XLSX con todas las ventas a crédito del comercio.
type ExportUseCase struct {
	sales    repository.CreditSaleRepository
	exporter SpreadsheetExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(sales repository.CreditSaleRepository, exporter SpreadsheetExporter) *ExportUseCase {
	return &ExportUseCase{sales: sales, exporter: exporter}
}

// ExportCreditSales devuelve los bytes del archivo y su nombre.
func (uc *ExportUseCase) ExportCreditSales(ctx context.Context, merchantID string) ([]byte, string, error) {
	sales, err := uc.sales.List(ctx, merchantID, repository.ListQuery{})
	if err != nil {
		return nil, "", fmt.Errorf("exportar ventas: %w", err)
	}
	rows := make([]dto.CreditSaleExportRow, len(sales))
	for i, s := range sales {
		rows[i] = dto.CreditSaleExportRow{
			CustomerName:  s.CustomerName,
			CustomerPhone: s.CustomerPhone,
			TotalAmount:   s.TotalAmount,
			PaidAmount:    s.PaidAmount,
			AmountDue:     s.AmountDue(),
			DueDate:       s.DueDate,
			Status:        s.Status,
		}
	}
	data, err := uc.exporter.ExportCreditSales(ctx, rows)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("ventas-credito-%s.xlsx", time.Now().Format("20060102")), nil
}

package report

import (
	"context"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
)

// StatementPDFGenerator genera el estado de cuenta en PDF de una venta a crédito.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, data *dto.StatementData) ([]byte, error)
}

// SpreadsheetExporter genera la planilla de ventas a crédito.
type SpreadsheetExporter interface {
	ExportCreditSales(ctx context.Context, rows []dto.CreditSaleExportRow) ([]byte, error)
}

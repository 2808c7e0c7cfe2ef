// Package xlsx genera planillas Excel con excelize.
package xlsx

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/report"
)

var _ report.SpreadsheetExporter = (*Exporter)(nil)

const sheetName = "Ventas"

var headings = []string{"Cliente", "Teléfono", "Total", "Pagado", "Saldo", "Vencimiento", "Estado"}

// Exporter implementa report.SpreadsheetExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportCreditSales escribe una fila por venta debajo de la cabecera y devuelve el XLSX.
func (e *Exporter) ExportCreditSales(_ context.Context, rows []dto.CreditSaleExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	for i, h := range headings {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(sheetName, 1, 1, bold)
	}

	for i, r := range rows {
		rowNo := i + 2
		values := []any{
			r.CustomerName,
			r.CustomerPhone,
			r.TotalAmount.InexactFloat64(),
			r.PaidAmount.InexactFloat64(),
			r.AmountDue.InexactFloat64(),
			r.DueDate.Format(dto.DateLayout),
			r.Status,
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowNo)
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", rowNo, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

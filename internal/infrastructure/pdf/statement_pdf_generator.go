// Package pdf genera el estado de cuenta en PDF de una venta a crédito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Comercio             │  ESTADO DE CUENTA + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Teléfono   │  Vencimiento + Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total / Pagado / SALDO PENDIENTE                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HISTORIAL: Fecha | Estado | Mensaje del recordatorio        │
//	│  FOOTER: QR con la referencia de la venta                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/report"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

var _ report.StatementPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const dateLayout = "02/01/2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.StatementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateStatementPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStatementPDF(_ context.Context, data *dto.StatementData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("pdf: datos del estado de cuenta vacíos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Estado de cuenta", true).
		WithAuthor(nonEmpty(data.StoreName, "Creditos"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(&data.Sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data))
	m.AddRows(line.NewRow(3))

	m.AddRows(historyTitleRow())
	m.AddRows(historyHeaderRow())
	m.AddRows(historyRows(data.Reminders)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(&data.Sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del comercio (izq) y título + fecha de emisión (der).
func headerRow(data *dto.StatementData) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(data.StoreName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+data.GeneratedAt.Format(dateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente y de la venta.
func customerRow(sale *entity.CreditSale) core.Row {
	statusColor := colorGray
	if sale.Status == entity.CreditSaleOverdue {
		statusColor = colorDanger
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(sale.CustomerName, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("Tel: "+nonEmpty(sale.CustomerPhone, "-"), props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Vencimiento: "+sale.DueDate.Format(dateLayout), props.Text{
				Size: 9, Align: align.Right, Top: 6,
			}),
			text.New("Estado: "+strings.ToUpper(sale.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 11, Color: statusColor,
			}),
		),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(data *dto.StatementData) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	grand := func(s string, top float64) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: top,
		})
	}
	labelAt := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top})
	}

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Total:"),
			labelAt("Pagado:", 7),
			labelAt("SALDO PENDIENTE:", 14),
		),
		col.New(4).Add(
			value(data.FormattedTotal, 0),
			value(data.FormattedPaid, 7),
			grand(data.FormattedDue, 14),
		),
	)
}

func historyTitleRow() core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New("HISTORIAL DE RECORDATORIOS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

// historyHeaderRow: cabecera de la tabla de recordatorios.
func historyHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Estado", 2, align.Center),
		h("Mensaje", 8, align.Left),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// historyRows: una fila por recordatorio; sin historial, una fila informativa.
func historyRows(reminders []entity.Reminder) []core.Row {
	if len(reminders) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin recordatorios enviados.", props.Text{Size: 8, Color: colorGray, Top: 2, Left: 1}),
		))}
	}
	result := make([]core.Row, 0, len(reminders))
	for _, r := range reminders {
		statusColor := colorGray
		if r.Status == entity.ReminderFailed {
			statusColor = colorDanger
		}
		result = append(result, row.New(10).Add(
			col.New(2).Add(text.New(r.CreatedAt.Format(dateLayout), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(r.Status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor})),
			col.New(8).Add(text.New(r.Message, props.Text{Size: 7, Top: 1, Left: 1, Right: 1})),
		))
	}
	return result
}

// footerRow: QR con la referencia de la venta + leyenda.
func footerRow(sale *entity.CreditSale) core.Row {
	return row.New(35).Add(
		col.New(3).Add(code.NewQr("credit-sale:"+sale.ID, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Referencia: "+sale.ID, props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New("Este documento resume el saldo de su compra a crédito. "+
				"Si ya realizó el pago, por favor ignore este aviso.", props.Text{
				Size: 8, Top: 14, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/application/report"
	"github.com/jhoicas/Creditos-api/internal/application/store"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// CreditSaleHandler CRUD de ventas a crédito (más recientes primero, ?limit= opcional).
type CreditSaleHandler = TableHandler[entity.CreditSale, entity.CreditSalePatch]

// NewCreditSaleHandler construye el handler. Las ventas se devuelven con amount_due.
func NewCreditSaleHandler(repo repository.CreditSaleRepository, n ports.Notifier) *CreditSaleHandler {
	return &CreditSaleHandler{
		newStore: func(col ports.Notifier, merchantID string, limit int) *store.CreditSaleStore {
			return store.NewCreditSaleStore(repo, col, merchantID, limit)
		},
		decodeCreate: decodeCreditSale,
		decodeUpdate: decodeCreditSalePatch,
		present: func(s entity.CreditSale) any {
			return dto.ToCreditSaleDTO(s)
		},
		notifier: n,
	}
}

func decodeCreditSale(c *fiber.Ctx) (*entity.CreditSale, error) {
	var in dto.CreateCreditSaleRequest
	if err := parseBody(c, &in); err != nil {
		return nil, err
	}
	if !in.TotalAmount.IsPositive() {
		return nil, invalidRequest("VALIDATION", "total_amount debe ser mayor a 0")
	}
	if in.PaidAmount.IsNegative() || in.PaidAmount.GreaterThan(in.TotalAmount) {
		return nil, invalidRequest("VALIDATION", "paid_amount debe estar entre 0 y total_amount")
	}
	due, err := time.Parse(dto.DateLayout, in.DueDate)
	if err != nil {
		return nil, invalidRequest("VALIDATION", "due_date: formato YYYY-MM-DD")
	}
	return &entity.CreditSale{
		CustomerID:  in.CustomerID,
		TotalAmount: in.TotalAmount,
		PaidAmount:  in.PaidAmount,
		DueDate:     due,
		Status:      in.Status,
	}, nil
}

func decodeCreditSalePatch(c *fiber.Ctx) (entity.CreditSalePatch, error) {
	var in dto.UpdateCreditSaleRequest
	if err := parseBody(c, &in); err != nil {
		return entity.CreditSalePatch{}, err
	}
	if in.TotalAmount != nil && !in.TotalAmount.IsPositive() {
		return entity.CreditSalePatch{}, invalidRequest("VALIDATION", "total_amount debe ser mayor a 0")
	}
	if in.PaidAmount != nil && in.PaidAmount.IsNegative() {
		return entity.CreditSalePatch{}, invalidRequest("VALIDATION", "paid_amount no puede ser negativo")
	}
	if in.TotalAmount != nil && in.PaidAmount != nil && in.PaidAmount.GreaterThan(*in.TotalAmount) {
		return entity.CreditSalePatch{}, invalidRequest("VALIDATION", "paid_amount debe estar entre 0 y total_amount")
	}
	patch := entity.CreditSalePatch{
		CustomerID:  in.CustomerID,
		TotalAmount: in.TotalAmount,
		PaidAmount:  in.PaidAmount,
		Status:      in.Status,
	}
	if in.DueDate != nil {
		due, err := time.Parse(dto.DateLayout, *in.DueDate)
		if err != nil {
			return entity.CreditSalePatch{}, invalidRequest("VALIDATION", "due_date: formato YYYY-MM-DD")
		}
		patch.DueDate = &due
	}
	return patch, nil
}

// ReportHandler descargas de la cartera: estado de cuenta PDF y planilla XLSX.
type ReportHandler struct {
	statement *report.StatementUseCase
	export    *report.ExportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(statement *report.StatementUseCase, export *report.ExportUseCase) *ReportHandler {
	return &ReportHandler{statement: statement, export: export}
}

// Statement GET /api/credit-sales/:id/statement
//
// Devuelve application/pdf como adjunto.
func (h *ReportHandler) Statement(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	pdf, filename, err := h.statement.DownloadStatementPDF(c.Context(), merchantID, id)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// Export GET /api/credit-sales/export
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	body, filename, err := h.export.ExportCreditSales(c.Context(), merchantID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

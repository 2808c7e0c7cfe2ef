package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// DateLayout formato de fechas de vencimiento en la API.
const DateLayout = "2006-01-02"

// CreateCreditSaleRequest body para POST /api/credit-sales.
type CreateCreditSaleRequest struct {
	CustomerID  string          `json:"customer_id" validate:"required"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	DueDate     string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	Status      string          `json:"status" validate:"omitempty,oneof=pending partial paid overdue"`
}

// UpdateCreditSaleRequest body para PUT /api/credit-sales/:id. Campos ausentes no cambian.
type UpdateCreditSaleRequest struct {
	CustomerID  *string          `json:"customer_id" validate:"omitempty,min=1"`
	TotalAmount *decimal.Decimal `json:"total_amount"`
	PaidAmount  *decimal.Decimal `json:"paid_amount"`
	DueDate     *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Status      *string          `json:"status" validate:"omitempty,oneof=pending partial paid overdue"`
}

// CreditSaleDTO venta a crédito con el saldo calculado.
type CreditSaleDTO struct {
	entity.CreditSale
	AmountDue decimal.Decimal `json:"amount_due"`
}

// ToCreditSaleDTO agrega amount_due a la venta.
func ToCreditSaleDTO(s entity.CreditSale) CreditSaleDTO {
	return CreditSaleDTO{CreditSale: s, AmountDue: s.AmountDue()}
}

// StatementData datos del estado de cuenta en PDF de una venta.
type StatementData struct {
	StoreName      string
	Sale           entity.CreditSale
	FormattedTotal string
	FormattedPaid  string
	FormattedDue   string
	Reminders      []entity.Reminder
	GeneratedAt    time.Time
}

// CreditSaleExportRow fila de la planilla de ventas a crédito.
type CreditSaleExportRow struct {
	CustomerName  string
	CustomerPhone string
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	AmountDue     decimal.Decimal
	DueDate       time.Time
	Status        string
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta a crédito.
const (
	CreditSalePending = "pending"
	CreditSalePartial = "partial"
	CreditSalePaid    = "paid"
	CreditSaleOverdue = "overdue"
)

// CreditSale representa una venta a crédito con fecha de vencimiento y pagos parciales.
// CustomerName y CustomerPhone vienen del join con customers (solo lectura).
type CreditSale struct {
	ID            string          `json:"id"`
	MerchantID    string          `json:"merchant_id"`
	CustomerID    string          `json:"customer_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueDate       time.Time       `json:"due_date"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AmountDue saldo pendiente: total - pagado.
func (s CreditSale) AmountDue() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}

// CreditSalePatch cambios parciales sobre una venta a crédito. nil = sin cambio.
type CreditSalePatch struct {
	CustomerID  *string          `json:"customer_id,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty"`
	PaidAmount  *decimal.Decimal `json:"paid_amount,omitempty"`
	DueDate     *time.Time       `json:"due_date,omitempty"`
	Status      *string          `json:"status,omitempty"`
}

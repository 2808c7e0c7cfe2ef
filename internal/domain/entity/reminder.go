package entity

import "time"

// Estados de entrega de un recordatorio.
const (
	ReminderSent   = "sent"
	ReminderFailed = "failed"
)

// Reminder registro de auditoría de un recordatorio SMS. Solo se inserta, nunca se modifica.
type Reminder struct {
	ID           string    `json:"id"`
	MerchantID   string    `json:"merchant_id"`
	CreditSaleID string    `json:"credit_sale_id"`
	Message      string    `json:"message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

package dto

import "github.com/shopspring/decimal"

// CreditDashboardDTO respuesta de GET /api/dashboard: cartera del comercio.
type CreditDashboardDTO struct {
	Currency string `json:"currency"`

	Outstanding          decimal.Decimal `json:"outstanding"` // saldo de ventas no pagadas
	OutstandingFormatted string          `json:"outstanding_formatted"`
	Overdue              decimal.Decimal `json:"overdue"` // saldo de ventas vencidas
	OverdueFormatted     string          `json:"overdue_formatted"`
	OverdueCount         int             `json:"overdue_count"`

	RemindersSentLast30Days int `json:"reminders_sent_last_30d"`
	LowStockCount           int `json:"low_stock_count"`
}

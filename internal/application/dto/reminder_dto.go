package dto

// SendSingleReminderRequest body para POST /api/reminders/send-single.
type SendSingleReminderRequest struct {
	CreditSaleID string `json:"creditSaleId"`
}

// SendRemindersResponse salida del envío en lote.
type SendRemindersResponse struct {
	Sent int `json:"sent"`
}

// SendSingleReminderResponse salida del envío individual.
type SendSingleReminderResponse struct {
	Success bool `json:"success"`
}

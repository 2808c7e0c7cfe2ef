package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/reminder"
)

// ReminderHandler envío de recordatorios de pago por SMS.
type ReminderHandler struct {
	dispatcher *reminder.Dispatcher
	log        zerolog.Logger
}

// NewReminderHandler construye el handler.
func NewReminderHandler(dispatcher *reminder.Dispatcher, log zerolog.Logger) *ReminderHandler {
	return &ReminderHandler{dispatcher: dispatcher, log: log}
}

// Send POST /api/reminders/send
//
// Envía un recordatorio por cada venta vencida en los últimos 7 días.
// Respuesta: {"sent": n}. Los fallos individuales no abortan el lote.
func (h *ReminderHandler) Send(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	sent, err := h.dispatcher.SendBatch(c.Context(), merchantID)
	if err != nil {
		h.log.Error().Err(err).Str("merchant_id", merchantID).Msg("envío de recordatorios")
		return writeError(c, err)
	}
	return c.JSON(dto.SendRemindersResponse{Sent: sent})
}

// SendSingle POST /api/reminders/send-single {"creditSaleId": "..."}
//
// 400 sin creditSaleId, 404 si la venta no existe, 500 con el mensaje del proveedor si falla el envío.
func (h *ReminderHandler) SendSingle(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	var in dto.SendSingleReminderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if strings.TrimSpace(in.CreditSaleID) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Credit sale ID is required"})
	}
	if err := h.dispatcher.SendSingle(c.Context(), merchantID, in.CreditSaleID); err != nil {
		h.log.Warn().Err(err).Str("credit_sale_id", in.CreditSaleID).Msg("recordatorio individual")
		return writeError(c, err)
	}
	return c.JSON(dto.SendSingleReminderResponse{Success: true})
}

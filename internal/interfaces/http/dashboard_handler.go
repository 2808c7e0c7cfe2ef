package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Creditos-api/internal/application/analytics"
)

// DashboardHandler maneja el resumen de cartera.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve la cartera del comercio.
// GET /api/dashboard
//
// Respuesta: CreditDashboardDTO (outstanding, overdue, overdue_count,
// reminders_sent_last_30d, low_stock_count) con montos formateados en la moneda del comercio.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}

	summary, err := h.uc.GetSummary(c.Context(), merchantID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(summary)
}

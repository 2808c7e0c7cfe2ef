package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Creditos-api/internal/application/currency"
	"github.com/jhoicas/Creditos-api/internal/application/dto"
	money "github.com/jhoicas/Creditos-api/internal/domain/currency"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// CurrencyHandler moneda preferida del comercio y formateo de montos.
type CurrencyHandler struct {
	settings repository.SettingsRepository
}

// NewCurrencyHandler construye el handler.
func NewCurrencyHandler(settings repository.SettingsRepository) *CurrencyHandler {
	return &CurrencyHandler{settings: settings}
}

// Settings GET /api/currency/settings
func (h *CurrencyHandler) Settings(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	f := currency.NewFormatter(h.settings, merchantID)
	if err := f.LoadSettings(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CurrencySettingsResponse{
		Currency:       f.Code(),
		CurrencySymbol: f.Symbol(),
		Locale:         money.LocaleFor(f.Code()),
	})
}

// UpdateSettings PUT /api/currency/settings
func (h *CurrencyHandler) UpdateSettings(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	var in dto.UpdateCurrencySettingsRequest
	if err := parseBody(c, &in); err != nil {
		return badRequest(c, err)
	}
	cur, ok := money.Lookup(in.Currency)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_CURRENCY", Message: "moneda no soportada: " + in.Currency})
	}
	symbol := strings.TrimSpace(in.CurrencySymbol)
	if symbol == "" {
		symbol = cur.Symbol
	}
	settings := &entity.StoreSettings{MerchantID: merchantID, Currency: cur.Code, CurrencySymbol: symbol}
	if err := h.settings.Upsert(c.Context(), settings); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.CurrencySettingsResponse{Currency: cur.Code, CurrencySymbol: symbol, Locale: cur.Locale})
}

// Format GET /api/currency/format?amount=1234.5&currency=EUR
//
// Sin currency se usa la moneda guardada del comercio (USD si no tiene).
func (h *CurrencyHandler) Format(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	var q dto.FormatAmountRequest
	if err := parseQuery(c, &q); err != nil {
		return badRequest(c, err)
	}
	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount inválido"})
	}
	f := currency.NewFormatter(h.settings, merchantID)
	if err := f.LoadSettings(c.Context()); err != nil {
		return writeError(c, err)
	}
	formatted, err := f.Format(amount, q.Currency)
	if err != nil {
		return writeError(c, err)
	}
	code := strings.ToUpper(strings.TrimSpace(q.Currency))
	if code == "" {
		code = f.Code()
	}
	return c.JSON(dto.FormatAmountResponse{Formatted: formatted, Currency: code, Locale: money.LocaleFor(code)})
}

// List GET /api/currency/list
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	return c.JSON(money.Supported())
}

package dto

// CurrencySettingsResponse moneda vigente del comercio.
type CurrencySettingsResponse struct {
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	Locale         string `json:"locale"`
}

// FormatAmountRequest query de GET /api/currency/format.
type FormatAmountRequest struct {
	Amount   string `query:"amount" validate:"required,numeric"`
	Currency string `query:"currency" validate:"omitempty,len=3,alpha"`
}

// FormatAmountResponse monto formateado.
type FormatAmountResponse struct {
	Formatted string `json:"formatted"`
	Currency  string `json:"currency"`
	Locale    string `json:"locale"`
}

// UpdateCurrencySettingsRequest body para PUT /api/currency/settings.
// Sin símbolo se usa el de la tabla de monedas.
type UpdateCurrencySettingsRequest struct {
	Currency       string `json:"currency" validate:"required,len=3,alpha"`
	CurrencySymbol string `json:"currency_symbol" validate:"omitempty,max=8"`
}

package entity

// Valores por defecto cuando el comercio no tiene configuración guardada.
const (
	DefaultCurrencyCode   = "USD"
	DefaultCurrencySymbol = "$"
)

// StoreSettings preferencias de moneda del comercio.
type StoreSettings struct {
	MerchantID     string `json:"merchant_id"`
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
}

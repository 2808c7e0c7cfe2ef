// Package currency contiene la tabla de monedas soportadas y el formateo contable
// de montos según la convención de cada locale (reglas tomadas de CLDR).
package currency

import "strings"

// DefaultLocale locale usado cuando la moneda no está en la tabla.
const DefaultLocale = "en-US"

// Currency moneda soportada con su símbolo y el locale en que se muestra.
type Currency struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	Symbol       string `json:"symbol"`
	NarrowSymbol string `json:"narrow_symbol"`
	Locale       string `json:"locale"`
}

var supported = []Currency{
	{Name: "US Dollar", Code: "USD", Symbol: "$", NarrowSymbol: "$", Locale: "en-US"},
	{Name: "Euro", Code: "EUR", Symbol: "€", NarrowSymbol: "€", Locale: "de-DE"},
	{Name: "British Pound", Code: "GBP", Symbol: "£", NarrowSymbol: "£", Locale: "en-GB"},
	{Name: "Japanese Yen", Code: "JPY", Symbol: "¥", NarrowSymbol: "¥", Locale: "ja-JP"},
	{Name: "Canadian Dollar", Code: "CAD", Symbol: "CA$", NarrowSymbol: "$", Locale: "en-CA"},
	{Name: "Australian Dollar", Code: "AUD", Symbol: "A$", NarrowSymbol: "$", Locale: "en-AU"},
	{Name: "Swiss Franc", Code: "CHF", Symbol: "CHF", NarrowSymbol: "CHF", Locale: "fr-CH"},
	{Name: "Chinese Yuan", Code: "CNY", Symbol: "¥", NarrowSymbol: "¥", Locale: "zh-CN"},
	{Name: "Indian Rupee", Code: "INR", Symbol: "₹", NarrowSymbol: "₹", Locale: "hi-IN"},
	{Name: "Brazilian Real", Code: "BRL", Symbol: "R$", NarrowSymbol: "R$", Locale: "pt-BR"},
	{Name: "South African Rand", Code: "ZAR", Symbol: "R", NarrowSymbol: "R", Locale: "en-ZA"},
	{Name: "Nigerian Naira", Code: "NGN", Symbol: "₦", NarrowSymbol: "₦", Locale: "en-NG"},
	{Name: "Kenyan Shilling", Code: "KES", Symbol: "KSh", NarrowSymbol: "Ksh", Locale: "en-KE"},
	{Name: "Ghanaian Cedi", Code: "GHS", Symbol: "GH₵", NarrowSymbol: "GH₵", Locale: "en-GH"},
}

// Supported devuelve una copia de la tabla de monedas.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Lookup busca una moneda por código ISO (sin distinguir mayúsculas).
func Lookup(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range supported {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// LocaleFor devuelve el locale de la moneda, o DefaultLocale si no está en la tabla.
func LocaleFor(code string) string {
	if c, ok := Lookup(code); ok {
		return c.Locale
	}
	return DefaultLocale
}

package currency_test

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/currency"
)

func TestFormat_USDenUS(t *testing.T) {
	out, err := currency.Format(decimal.NewFromInt(1000), "USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$1,000.00", out)
}

func TestFormat_EURdeDE(t *testing.T) {
	out, err := currency.Format(decimal.NewFromInt(1000), "EUR", "de-DE")
	require.NoError(t, err)
	assert.Equal(t, "1.000,00\u00a0€", out, "de-DE usa punto de miles, coma decimal y € al final")
}

func TestFormat_NegativoContable(t *testing.T) {
	out, err := currency.Format(decimal.RequireFromString("-1234.5"), "USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "($1,234.50)", out)

	out, err = currency.Format(decimal.RequireFromString("-1234.5"), "EUR", "de-DE")
	require.NoError(t, err)
	assert.Equal(t, "-1.234,50\u00a0€", out, "de-DE no usa paréntesis")
}

func TestFormat_YenSinDecimales(t *testing.T) {
	out, err := currency.Format(decimal.RequireFromString("1234.5"), "JPY", "ja-JP")
	require.NoError(t, err)
	assert.Equal(t, "\uffe51,235", out, "ja-JP usa el yen de ancho completo")

	out, err = currency.Format(decimal.RequireFromString("1234.5"), "JPY", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "¥1,235", out)
}

func TestFormat_AgrupacionIndia(t *testing.T) {
	out, err := currency.Format(decimal.NewFromInt(1234567), "INR", "hi-IN")
	require.NoError(t, err)
	assert.Equal(t, "₹12,34,567.00", out)
}

func TestFormat_EnteroGrandeIgualQueEnteroNormal(t *testing.T) {
	small, err := currency.Format(decimal.NewFromInt(1000), "USD", "en-US")
	require.NoError(t, err)
	fromBig, err := currency.Format(decimal.NewFromBigInt(big.NewInt(1000), 0), "USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, small, fromBig)

	huge, ok := new(big.Int).SetString("12345678901234567890", 10)
	require.True(t, ok)
	out, err := currency.Format(decimal.NewFromBigInt(huge, 0), "USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$12,345,678,901,234,567,890.00", out, "no debe perder precisión")
}

func TestFormat_CeroNegativoSinSigno(t *testing.T) {
	out, err := currency.Format(decimal.RequireFromString("-0.001"), "USD", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "$0.00", out)
}

func TestFormat_MonedaFueraDeTablaUsaCodigo(t *testing.T) {
	out, err := currency.Format(decimal.NewFromInt(1000), "MXN", "en-US")
	require.NoError(t, err)
	assert.Equal(t, "MXN\u00a01,000.00", out)
}

func TestFormat_CodigoInvalido(t *testing.T) {
	_, err := currency.Format(decimal.NewFromInt(1), "12", "en-US")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocaleFor(t *testing.T) {
	assert.Equal(t, "de-DE", currency.LocaleFor("EUR"))
	assert.Equal(t, "de-DE", currency.LocaleFor("eur"), "el código no distingue mayúsculas")
	assert.Equal(t, currency.DefaultLocale, currency.LocaleFor("MXN"))
}

func TestSupported_DevuelveCopia(t *testing.T) {
	list := currency.Supported()
	require.Len(t, list, 14)
	list[0].Symbol = "X"
	c, ok := currency.Lookup("USD")
	require.True(t, ok)
	assert.Equal(t, "$", c.Symbol)
}

package sms

import (
	"fmt"
	"strings"

	"github.com/ttacon/libphonenumber"
)

// NormalizeE164 valida el número y lo devuelve en formato E.164 (+15551234567).
// Números sin prefijo internacional se interpretan en defaultRegion (ISO 3166, p.ej. "US").
func NormalizeE164(raw, defaultRegion string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("número de teléfono vacío")
	}
	p, err := libphonenumber.Parse(raw, strings.ToUpper(defaultRegion))
	if err != nil {
		return "", fmt.Errorf("número de teléfono %q inválido: %w", raw, err)
	}
	if !libphonenumber.IsValidNumber(p) {
		return "", fmt.Errorf("número de teléfono %q inválido", raw)
	}
	return libphonenumber.Format(p, libphonenumber.E164), nil
}

// Package currency resuelve la moneda preferida del comercio y formatea montos con ella.
package currency

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	money "github.com/jhoicas/Creditos-api/internal/domain/currency"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// SettingsReader lectura de store_settings. Devuelve (nil, nil) si el comercio no tiene fila.
type SettingsReader interface {
	GetByMerchant(ctx context.Context, merchantID string) (*entity.StoreSettings, error)
}

// Formatter moneda preferida de un comercio + formateo de montos.
// Arranca con USD / "$" hasta que LoadSettings encuentre una fila.
type Formatter struct {
	settings   SettingsReader
	merchantID string

	mu     sync.RWMutex
	code   string
	symbol string
}

// NewFormatter crea el formatter del comercio con los valores por defecto.
func NewFormatter(settings SettingsReader, merchantID string) *Formatter {
	return &Formatter{
		settings:   settings,
		merchantID: merchantID,
		code:       entity.DefaultCurrencyCode,
		symbol:     entity.DefaultCurrencySymbol,
	}
}

// LoadSettings lee la configuración del comercio. Sin fila (o con campos vacíos)
// se conservan los valores que ya estaban en memoria.
func (f *Formatter) LoadSettings(ctx context.Context) error {
	if f.settings == nil {
		return nil
	}
	s, err := f.settings.GetByMerchant(ctx, f.merchantID)
	if err != nil {
		return fmt.Errorf("leer configuración de moneda: %w", err)
	}
	if s == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if code := strings.TrimSpace(s.Currency); code != "" {
		f.code = strings.ToUpper(code)
	}
	if s.CurrencySymbol != "" {
		f.symbol = s.CurrencySymbol
	}
	return nil
}

// Code código ISO vigente.
func (f *Formatter) Code() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.code
}

// Symbol símbolo vigente (el guardado por el comercio, no el de la tabla).
func (f *Formatter) Symbol() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.symbol
}

// Format formatea amount. override (opcional) reemplaza la moneda guardada;
// el locale sale de la tabla para esa moneda y, si no está, es en-US.
func (f *Formatter) Format(amount decimal.Decimal, override string) (string, error) {
	code := strings.TrimSpace(override)
	if code == "" {
		code = f.Code()
	}
	return money.Format(amount, code, money.LocaleFor(code))
}

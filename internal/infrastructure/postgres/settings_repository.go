package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo acceso a store_settings (una fila por comercio).
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetByMerchant devuelve (nil, nil) si el comercio no tiene configuración.
func (r *SettingsRepo) GetByMerchant(ctx context.Context, merchantID string) (*entity.StoreSettings, error) {
	var s entity.StoreSettings
	err := r.q.QueryRow(ctx,
		`SELECT merchant_id, currency, currency_symbol FROM store_settings WHERE merchant_id = $1`,
		merchantID,
	).Scan(&s.MerchantID, &s.Currency, &s.CurrencySymbol)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store settings: %w", err)
	}
	return &s, nil
}

// Upsert crea o reemplaza la configuración del comercio.
func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.StoreSettings) error {
	query := `
		INSERT INTO store_settings (merchant_id, currency, currency_symbol, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (merchant_id) DO UPDATE
		SET currency = EXCLUDED.currency, currency_symbol = EXCLUDED.currency_symbol, updated_at = NOW()`
	if _, err := r.q.Exec(ctx, query, s.MerchantID, s.Currency, s.CurrencySymbol); err != nil {
		return fmt.Errorf("upsert store settings: %w", err)
	}
	return nil
}

package repository

import (
	"context"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
)

// SettingsRepository acceso a store_settings. Devuelve (nil, nil) si el comercio no tiene fila.
type SettingsRepository interface {
	GetByMerchant(ctx context.Context, merchantID string) (*entity.StoreSettings, error)
	Upsert(ctx context.Context, settings *entity.StoreSettings) error
}

package repository

import "github.com/jhoicas/Creditos-api/internal/domain/entity"

// MerchantRepository define el puerto de persistencia para las cuentas de comercio.
type MerchantRepository interface {
	Create(merchant *entity.Merchant) error
	GetByID(id string) (*entity.Merchant, error)
	FindByEmail(email string) (*entity.Merchant, error)
}

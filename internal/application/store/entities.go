package store

import (
	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

type (
	CustomerStore   = Store[entity.Customer, entity.CustomerPatch]
	InventoryStore  = Store[entity.InventoryItem, entity.InventoryItemPatch]
	CreditSaleStore = Store[entity.CreditSale, entity.CreditSalePatch]
)

// NewCustomerStore store de clientes, ordenados por nombre.
func NewCustomerStore(repo repository.CustomerRepository, n ports.Notifier, merchantID string) *CustomerStore {
	return New(repo, n, merchantID, CustomerMessages)
}

// NewInventoryStore store de inventario, ordenado por nombre.
func NewInventoryStore(repo repository.InventoryRepository, n ports.Notifier, merchantID string) *InventoryStore {
	return New[entity.InventoryItem, entity.InventoryItemPatch](repo, n, merchantID, InventoryMessages)
}

// NewCreditSaleStore store de ventas a crédito, más recientes primero. limit 0 = todas.
func NewCreditSaleStore(repo repository.CreditSaleRepository, n ports.Notifier, merchantID string, limit int) *CreditSaleStore {
	return New[entity.CreditSale, entity.CreditSalePatch](repo, n, merchantID, CreditSaleMessages, WithLimit(limit))
}

package repository

import "github.com/jhoicas/Creditos-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository = TableRepository[entity.Customer, entity.CustomerPatch]

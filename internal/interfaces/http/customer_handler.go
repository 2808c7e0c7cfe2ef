package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/application/store"
	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// CustomerHandler CRUD de clientes del comercio.
type CustomerHandler = TableHandler[entity.Customer, entity.CustomerPatch]

// NewCustomerHandler construye el handler.
func NewCustomerHandler(repo repository.CustomerRepository, n ports.Notifier) *CustomerHandler {
	return &CustomerHandler{
		newStore: func(col ports.Notifier, merchantID string, _ int) *store.CustomerStore {
			return store.NewCustomerStore(repo, col, merchantID)
		},
		decodeCreate: decodeCustomer,
		decodeUpdate: decodeCustomerPatch,
		present:      identity[entity.Customer],
		notifier:     n,
	}
}

func decodeCustomer(c *fiber.Ctx) (*entity.Customer, error) {
	var in dto.CreateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return nil, err
	}
	return &entity.Customer{Name: in.Name, Phone: in.Phone, Email: in.Email, Address: in.Address}, nil
}

func decodeCustomerPatch(c *fiber.Ctx) (entity.CustomerPatch, error) {
	var in dto.UpdateCustomerRequest
	if err := parseBody(c, &in); err != nil {
		return entity.CustomerPatch{}, err
	}
	return entity.CustomerPatch{Name: in.Name, Phone: in.Phone, Email: in.Email, Address: in.Address}, nil
}

package postgres

import (
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Creditos-api/internal/domain/entity"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	*Table[entity.Customer, entity.CustomerPatch]
}

var customerSpec = TableSpec[entity.Customer, entity.CustomerPatch]{
	Table:   "customers",
	Entity:  "customer",
	Columns: "id, merchant_id, name, phone, email, address, created_at, updated_at",
	OrderBy: "name",
	Scan: func(row pgx.Row, c *entity.Customer) error {
		return row.Scan(&c.ID, &c.MerchantID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	},
	Values: func(c *entity.Customer) []Assignment {
		return []Assignment{
			{"name", c.Name},
			{"phone", c.Phone},
			{"email", c.Email},
			{"address", c.Address},
		}
	},
	Patch: func(p entity.CustomerPatch) []Assignment {
		var out []Assignment
		out = appendIf(out, "name", p.Name)
		out = appendIf(out, "phone", p.Phone)
		out = appendIf(out, "email", p.Email)
		out = appendIf(out, "address", p.Address)
		return out
	},
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{Table: NewTable(q, customerSpec)}
}

// appendIf agrega la columna solo si el campo del parche viene informado.
func appendIf[V any](out []Assignment, column string, v *V) []Assignment {
	if v == nil {
		return out
	}
	return append(out, Assignment{Column: column, Value: *v})
}

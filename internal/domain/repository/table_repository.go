package repository

import "context"

// ListQuery opciones de lectura para un listado. Limit 0 = sin límite.
type ListQuery struct {
	Limit int
}

// TableRepository puerto genérico de persistencia para una tabla con dueño (merchant_id).
// T es la fila y P el parche parcial para Update.
// Todas las operaciones filtran por merchantID; Update y Delete filtran además por id,
// de modo que un id de otro comercio afecta cero filas.
type TableRepository[T any, P any] interface {
	List(ctx context.Context, merchantID string, q ListQuery) ([]T, error)
	Create(ctx context.Context, merchantID string, item *T) (*T, error)
	Update(ctx context.Context, merchantID, id string, patch P) (int64, error)
	Delete(ctx context.Context, merchantID, id string) (int64, error)
}

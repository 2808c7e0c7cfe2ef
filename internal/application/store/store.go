// Package store implementa el contenedor de estado genérico para las tablas del comercio
// (clientes, inventario, ventas a crédito): lista en memoria + mutadores que recargan
// la lista completa tras cada éxito y emiten un aviso en cada resultado.
package store

import (
	"context"
	"sync"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/domain"
	"github.com/jhoicas/Creditos-api/internal/domain/repository"
)

// Loading banderas de carga por tipo de operación (para la UI).
type Loading struct {
	Fetch  bool `json:"fetch"`
	Save   bool `json:"save"`
	Delete bool `json:"delete"`
}

// Store contenedor de estado de una tabla con dueño, atado a un comercio.
// Las llamadas concurrentes no se coordinan entre sí: cada una llega al backend por separado.
type Store[T any, P any] struct {
	repo       repository.TableRepository[T, P]
	notifier   ports.Notifier
	merchantID string
	msgs       Messages
	query      repository.ListQuery

	mu      sync.RWMutex
	items   []T
	loading Loading
}

// Option configura un Store.
type Option func(*options)

type options struct {
	limit int
}

// WithLimit limita la cantidad de filas que trae Reload (0 = todas).
func WithLimit(limit int) Option {
	return func(o *options) { o.limit = limit }
}

// New construye el store. merchantID es la identidad del llamador; todas las lecturas y
// escrituras se filtran por él.
func New[T any, P any](
	repo repository.TableRepository[T, P],
	notifier ports.Notifier,
	merchantID string,
	msgs Messages,
	opts ...Option,
) *Store[T, P] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[T, P]{
		repo:       repo,
		notifier:   notifier,
		merchantID: merchantID,
		msgs:       msgs,
		query:      repository.ListQuery{Limit: o.limit},
		items:      []T{},
	}
}

// Items devuelve una copia de la lista en memoria.
func (s *Store[T, P]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loading devuelve las banderas de carga actuales.
func (s *Store[T, P]) Loading() Loading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Reload trae todas las filas del comercio y reemplaza la lista en memoria.
// Un error de lectura se notifica y se devuelve; una lista vacía no es error.
// En error la lista queda con lo que haya llegado del backend (posiblemente vacía).
func (s *Store[T, P]) Reload(ctx context.Context) error {
	s.setLoading(func(l *Loading) { l.Fetch = true })
	items, err := s.repo.List(ctx, s.merchantID, s.query)
	s.mu.Lock()
	s.loading.Fetch = false
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.mu.Unlock()

	if err != nil {
		s.fail(s.msgs.ReadError)
		return err
	}
	return nil
}

// Create inserta una fila nueva. En éxito recarga la lista y devuelve la fila creada;
// en error notifica, deja la lista intacta y devuelve (nil, err).
func (s *Store[T, P]) Create(ctx context.Context, item *T) (*T, error) {
	if item == nil {
		s.fail(s.msgs.CreateError)
		return nil, domain.ErrInvalidInput
	}
	s.setLoading(func(l *Loading) { l.Save = true })
	created, err := s.repo.Create(ctx, s.merchantID, item)
	s.setLoading(func(l *Loading) { l.Save = false })
	if err != nil {
		s.fail(s.msgs.CreateError)
		return nil, err
	}
	s.refresh(ctx)
	s.succeed(s.msgs.Created)
	return created, nil
}

// Update aplica patch a la fila id del comercio. Si no coincide ninguna fila
// (id inexistente o de otro comercio) devuelve domain.ErrNotFound.
func (s *Store[T, P]) Update(ctx context.Context, id string, patch P) error {
	if id == "" {
		s.fail(s.msgs.UpdateError)
		return domain.ErrInvalidInput
	}
	s.setLoading(func(l *Loading) { l.Save = true })
	n, err := s.repo.Update(ctx, s.merchantID, id, patch)
	s.setLoading(func(l *Loading) { l.Save = false })
	if err == nil && n == 0 {
		err = domain.ErrNotFound
	}
	if err != nil {
		s.fail(s.msgs.UpdateError)
		return err
	}
	s.refresh(ctx)
	s.succeed(s.msgs.Updated)
	return nil
}

// Delete elimina la fila id del comercio. Mismas reglas de coincidencia que Update.
func (s *Store[T, P]) Delete(ctx context.Context, id string) error {
	if id == "" {
		s.fail(s.msgs.DeleteError)
		return domain.ErrInvalidInput
	}
	s.setLoading(func(l *Loading) { l.Delete = true })
	n, err := s.repo.Delete(ctx, s.merchantID, id)
	s.setLoading(func(l *Loading) { l.Delete = false })
	if err == nil && n == 0 {
		err = domain.ErrNotFound
	}
	if err != nil {
		s.fail(s.msgs.DeleteError)
		return err
	}
	s.refresh(ctx)
	s.succeed(s.msgs.Deleted)
	return nil
}

// refresh recarga tras una mutación exitosa; el fallo de lectura ya queda notificado por Reload.
func (s *Store[T, P]) refresh(ctx context.Context) {
	_ = s.Reload(ctx)
}

func (s *Store[T, P]) setLoading(fn func(*Loading)) {
	s.mu.Lock()
	fn(&s.loading)
	s.mu.Unlock()
}

func (s *Store[T, P]) fail(m Message) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ports.Notification{Title: m.Title, Description: m.Description, Severity: ports.SeverityError})
}

func (s *Store[T, P]) succeed(m Message) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ports.Notification{Title: m.Title, Description: m.Description, Severity: ports.SeveritySuccess})
}

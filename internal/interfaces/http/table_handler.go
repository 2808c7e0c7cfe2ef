package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/ports"
	"github.com/jhoicas/Creditos-api/internal/application/store"
	"github.com/jhoicas/Creditos-api/internal/infrastructure/notify"
)

// TableHandler expone un store.Store como recurso REST.
// Cada request arma su propio store, atado al comercio del token, y un Collector
// que devuelve en la respuesta los avisos emitidos por la operación.
type TableHandler[T any, P any] struct {
	newStore     func(n ports.Notifier, merchantID string, limit int) *store.Store[T, P]
	decodeCreate func(c *fiber.Ctx) (*T, error)
	decodeUpdate func(c *fiber.Ctx) (P, error)
	present      func(T) any
	notifier     ports.Notifier
}

// List GET /api/<tabla>?limit=
func (h *TableHandler[T, P]) List(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	var q dto.ListRequest
	if err := parseQuery(c, &q); err != nil {
		return badRequest(c, err)
	}
	col := notify.NewCollector(h.notifier)
	s := h.newStore(col, merchantID, q.Limit)
	if err := s.Reload(c.Context()); err != nil {
		return h.fail(c, col, err)
	}
	return c.JSON(dto.StoreResponse[[]any]{Data: h.presentAll(s.Items()), Notifications: col.Notifications()})
}

// Create POST /api/<tabla>
func (h *TableHandler[T, P]) Create(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	item, err := h.decodeCreate(c)
	if err != nil {
		return badRequest(c, err)
	}
	col := notify.NewCollector(h.notifier)
	s := h.newStore(col, merchantID, c.QueryInt("limit", 0))
	created, err := s.Create(c.Context(), item)
	if err != nil {
		return h.fail(c, col, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.StoreResponse[any]{Data: h.present(*created), Notifications: col.Notifications()})
}

// Update PUT /api/<tabla>/:id. Responde la lista recargada.
func (h *TableHandler[T, P]) Update(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	patch, err := h.decodeUpdate(c)
	if err != nil {
		return badRequest(c, err)
	}
	col := notify.NewCollector(h.notifier)
	s := h.newStore(col, merchantID, c.QueryInt("limit", 0))
	if err := s.Update(c.Context(), c.Params("id"), patch); err != nil {
		return h.fail(c, col, err)
	}
	return c.JSON(dto.StoreResponse[[]any]{Data: h.presentAll(s.Items()), Notifications: col.Notifications()})
}

// Delete DELETE /api/<tabla>/:id. Responde la lista recargada.
func (h *TableHandler[T, P]) Delete(c *fiber.Ctx) error {
	merchantID := GetMerchantID(c)
	if merchantID == "" {
		return unauthorized(c)
	}
	col := notify.NewCollector(h.notifier)
	s := h.newStore(col, merchantID, c.QueryInt("limit", 0))
	if err := s.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, col, err)
	}
	return c.JSON(dto.StoreResponse[[]any]{Data: h.presentAll(s.Items()), Notifications: col.Notifications()})
}

func (h *TableHandler[T, P]) fail(c *fiber.Ctx, col *notify.Collector, err error) error {
	status, body := respondError(c, err)
	return c.Status(status).JSON(dto.StoreResponse[any]{Notifications: col.Notifications(), Error: &body})
}

func (h *TableHandler[T, P]) presentAll(items []T) []any {
	out := make([]any, len(items))
	for i, it := range items {
		out[i] = h.present(it)
	}
	return out
}

func identity[T any](v T) any { return v }

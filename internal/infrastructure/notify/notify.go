// Package notify implementa ports.Notifier: avisos al log y recolección por request HTTP.
package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Creditos-api/internal/application/ports"
)

var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = (*Collector)(nil)
)

// LogNotifier escribe cada aviso en el log (error como warn, el resto como info).
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notifier sobre log.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra el aviso.
func (n *LogNotifier) Notify(note ports.Notification) {
	ev := n.log.Info()
	if note.Severity == ports.SeverityError {
		ev = n.log.Warn()
	}
	ev.Str("title", note.Title).
		Str("severity", string(note.Severity)).
		Str("description", note.Description).
		Msg("aviso")
}

// Collector acumula los avisos de una request para devolverlos en la respuesta
// y los reenvía a next (puede ser nil).
type Collector struct {
	next ports.Notifier

	mu    sync.Mutex
	items []ports.Notification
}

// NewCollector crea un colector vacío.
func NewCollector(next ports.Notifier) *Collector {
	return &Collector{next: next}
}

// Notify guarda el aviso y lo reenvía.
func (c *Collector) Notify(note ports.Notification) {
	c.mu.Lock()
	c.items = append(c.items, note)
	c.mu.Unlock()
	if c.next != nil {
		c.next.Notify(note)
	}
}

// Notifications copia de los avisos recolectados (nunca nil).
func (c *Collector) Notifications() []ports.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ports.Notification, len(c.items))
	copy(out, c.items)
	return out
}

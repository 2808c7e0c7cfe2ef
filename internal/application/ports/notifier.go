package ports

// Severity nivel de una notificación visible al usuario.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification aviso (toast) que la UI muestra tras una operación.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`
}

// Notifier puerto de salida para avisos al usuario. Fire-and-forget: no devuelve error.
type Notifier interface {
	Notify(n Notification)
}

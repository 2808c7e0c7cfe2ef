package ports

import "context"

// MessageSender define el puerto de salida hacia el proveedor de SMS.
// Cualquier adaptador (Twilio, mock, consola) debe implementar esta interfaz.
type MessageSender interface {
	// Send envía body desde from hacia to y devuelve el identificador del proveedor.
	// El error describe el motivo del rechazo.
	Send(ctx context.Context, body, to, from string) (string, error)
}

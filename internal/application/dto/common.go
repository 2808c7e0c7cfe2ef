package dto

import "github.com/jhoicas/Creditos-api/internal/application/ports"

// ListRequest parámetros de listado. Limit 0 = todas las filas.
type ListRequest struct {
	Limit int `query:"limit" validate:"min=0,max=1000"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StoreResponse envoltura de los endpoints de tablas: datos + avisos generados por la operación.
// Error solo viene cuando la operación falló.
type StoreResponse[T any] struct {
	Data          T                    `json:"data"`
	Notifications []ports.Notification `json:"notifications"`
	Error         *ErrorResponse       `json:"error,omitempty"`
}

package dto

import "time"

// RegisterRequest entrada para registro de un comercio.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	StoreName string `json:"store_name" validate:"omitempty,max=200"`
}

// MerchantResponse salida de un comercio (sin password).
type MerchantResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	StoreName string    `json:"store_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token    string           `json:"token"`
	Merchant MerchantResponse `json:"merchant"`
}

// MeResponse datos del comercio autenticado para la cabecera de la UI.
type MeResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Initials  string `json:"initials"`
	FirstName string `json:"first_name"`
	StoreName string `json:"store_name"`
}

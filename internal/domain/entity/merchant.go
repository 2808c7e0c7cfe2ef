package entity

import (
	"strings"
	"time"
)

// Merchant representa la cuenta del comercio (tenant). Su ID filtra todas las filas.
type Merchant struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	StoreName    string
	Status       string // active, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Initials devuelve las dos primeras letras del email en mayúsculas, o "?" si no hay email.
func (m Merchant) Initials() string {
	if m.Email == "" {
		return "?"
	}
	r := []rune(m.Email)
	if len(r) > 2 {
		r = r[:2]
	}
	return strings.ToUpper(string(r))
}

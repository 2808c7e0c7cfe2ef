package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
	"github.com/jhoicas/Creditos-api/internal/application/reminder"
	"github.com/jhoicas/Creditos-api/internal/domain"
)

// errorStatus traduce un error de dominio a status HTTP + código.
func errorStatus(err error) (int, dto.ErrorResponse) {
	if msg, ok := reminder.IsProviderError(err); ok {
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "PROVIDER_ERROR", Message: msg}
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: codeInternal, Message: "error interno del servidor"}
}

const (
	codeInternal = "INTERNAL"
	localLogger  = "logger"
)

// withLogger deja el logger de la API en el contexto del request.
func withLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localLogger, log)
		return c.Next()
	}
}

func requestLogger(c *fiber.Ctx) zerolog.Logger {
	if log, ok := c.Locals(localLogger).(zerolog.Logger); ok {
		return log
	}
	return zerolog.Nop()
}

// respondError traduce err y registra en el log los errores internos, que no
// se devuelven al cliente.
func respondError(c *fiber.Ctx, err error) (int, dto.ErrorResponse) {
	status, body := errorStatus(err)
	if body.Code == codeInternal {
		log := requestLogger(c)
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	}
	return status, body
}

func writeError(c *fiber.Ctx, err error) error {
	status, body := respondError(c, err)
	return c.Status(status).JSON(body)
}

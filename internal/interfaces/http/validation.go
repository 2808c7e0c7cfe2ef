package http

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Creditos-api/internal/application/dto"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// requestError entrada rechazada antes de llegar al caso de uso (400).
type requestError struct {
	dto.ErrorResponse
}

func (e *requestError) Error() string { return e.Message }

func invalidRequest(code, msg string) error {
	return &requestError{dto.ErrorResponse{Code: code, Message: msg}}
}

// parseBody parsea el body JSON en out y aplica las reglas `validate`.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return invalidRequest("INVALID_BODY", "cuerpo inválido")
	}
	return validateStruct(out)
}

// parseQuery igual que parseBody pero sobre el query string.
func parseQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return invalidRequest("INVALID_QUERY", "parámetros inválidos")
	}
	return validateStruct(out)
}

func validateStruct(out any) error {
	if err := validate.Struct(out); err != nil {
		return invalidRequest("VALIDATION", validationMessage(err))
	}
	return nil
}

// badRequest responde 400 con el detalle de un requestError.
func badRequest(c *fiber.Ctx, err error) error {
	var re *requestError
	if errors.As(err, &re) {
		return c.Status(fiber.StatusBadRequest).JSON(re.ErrorResponse)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
}

// validationMessage lista los campos inválidos: "name: required, email: email".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, strings.ToLower(fe.Field())+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}

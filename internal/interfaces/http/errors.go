package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/order"
	"github.com/jhoicas/Restaurante-api/internal/domain"
)

// errorStatus traduce un error de dominio a status HTTP y código de respuesta.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return fiber.StatusUnauthorized, "TOKEN_EXPIRED"
	case errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized, "INVALID_TOKEN"
	case errors.Is(err, domain.ErrInvalidTenant):
		return fiber.StatusUnauthorized, "INVALID_CLIENT"
	case errors.Is(err, domain.ErrTenantMembership):
		return fiber.StatusUnauthorized, "MEMBERSHIP_REVOKED"
	case domain.IsAuthError(err):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest, "DUPLICATE"
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidTransition):
		return fiber.StatusConflict, "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, order.ErrTicketDisabled):
		return fiber.StatusNotImplemented, "TICKET_DISABLED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// respondError escribe el ErrorResponse correspondiente a err.
// Los 500 no exponen el detalle interno.
func respondError(c *fiber.Ctx, err error) error {
	status, code := errorStatus(err)
	body := dto.ErrorResponse{Code: code, Message: err.Error()}
	switch {
	case status == fiber.StatusInternalServerError:
		c.Locals(localError, err)
		body.Message = "error interno"
	case domain.IsAuthError(err):
		c.Locals(localError, err)
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Fields = ve.Fields
	}
	return c.Status(status).JSON(body)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, domain.Invalid("id", "debe ser un entero positivo")
	}
	return int64(id), nil
}

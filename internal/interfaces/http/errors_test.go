package http

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restaurante-api/internal/domain"
)

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrAuthentication, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{fmt.Errorf("login: %w", domain.ErrInvalidTenant), fiber.StatusUnauthorized, "INVALID_CLIENT"},
		{fmt.Errorf("%w: exp", domain.ErrTokenExpired), fiber.StatusUnauthorized, "TOKEN_EXPIRED"},
		{domain.ErrTokenInvalid, fiber.StatusUnauthorized, "INVALID_TOKEN"},
		{domain.ErrTenantMembership, fiber.StatusUnauthorized, "MEMBERSHIP_REVOKED"},
		{domain.Invalid("name", "requerido"), fiber.StatusBadRequest, "VALIDATION"},
		{fmt.Errorf("crear mesa: %w", domain.ErrDuplicate), fiber.StatusBadRequest, "DUPLICATE"},
		{fmt.Errorf("dishes[2]: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{domain.ErrInvalidTransition, fiber.StatusConflict, "INVALID_TRANSITION"},
		{errors.New("conexión rechazada"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, c := range cases {
		status, code := errorStatus(c.err)
		assert.Equal(t, c.status, status, c.err.Error())
		assert.Equal(t, c.code, code, c.err.Error())
	}
}

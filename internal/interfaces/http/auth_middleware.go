package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
)

// Locals keys para UserID y ClientID en Fiber.
const (
	LocalUserID   = "user_id"
	LocalClientID = "client_id"
	localError    = "request_error"
)

// Authenticator valida un access token y resuelve el usuario y el client que lo respaldan.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (tenancy.Scope, error)
}

// AuthMiddleware valida el Bearer Token y carga UserID y ClientID en c.Locals.
// La membresía se revisa en cada petición: un usuario retirado del client recibe 401 aunque el token siga vigente.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		scope, err := authn.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUserID, scope.UserID)
		c.Locals(LocalClientID, scope.ClientID)
		return c.Next()
	}
}

// TenantScope pasa el client autenticado al contexto de los casos de uso.
// Cualquier client_id enviado en query o body se ignora: solo cuenta el del token.
func TenantScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, clientID := GetUserID(c), GetClientID(c)
		if userID <= 0 || clientID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "client_id requerido"})
		}
		c.SetUserContext(tenancy.WithScope(c.UserContext(), tenancy.Scope{UserID: userID, ClientID: clientID}))
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetClientID devuelve el ClientID del contexto (después del middleware de auth).
func GetClientID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalClientID).(int64)
	return v
}

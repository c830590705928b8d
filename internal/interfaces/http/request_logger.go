package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Restaurante-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

const localRequestID = "request_id"

// RequestID reutiliza X-Request-ID si viene en la petición; si no, genera uno.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(localRequestID, id)
		return c.Next()
	}
}

// RequestLogger registra método, ruta, status y latencia de cada petición.
// user_id y client_id se agregan cuando la petición pasó por AuthMiddleware.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status == fiber.StatusUnauthorized:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		if id, ok := c.Locals(localRequestID).(string); ok {
			ev = ev.Str("request_id", id)
		}
		if userID := GetUserID(c); userID > 0 {
			ev = ev.Int64("user_id", userID).Int64("client_id", GetClientID(c))
		}
		if cause, ok := c.Locals(localError).(error); ok {
			ev = ev.AnErr("cause", cause)
		} else if err != nil {
			ev = ev.Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

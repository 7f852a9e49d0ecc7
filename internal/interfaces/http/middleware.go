package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/daandrade2707-cloud/visualizador-luz-del-camino/pkg/logger"
)

// RequestLogger registra cada petición con un request id propio. Respeta el
// X-Request-ID entrante para poder correlacionar con el cliente.
func RequestLogger(log *logger.Logger) fiber.Handler {
	l := log.Componente("http")
	return func(c *fiber.Ctx) error {
		inicio := time.Now()

		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)

		err := c.Next()

		evento := l.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evento = l.Error()
		}
		evento.
			Str("request_id", id).
			Str("metodo", c.Method()).
			Str("ruta", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duracion", time.Since(inicio)).
			Err(err).
			Msg("petición atendida")
		return err
	}
}

package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/almacen-admin/internal/application/dto"
	"github.com/jhoicas/almacen-admin/internal/domain"
	"github.com/jhoicas/almacen-admin/pkg/session"
)

// Locals keys para el actor y el id de petición en Fiber.
const (
	LocalActor     = "actor"
	LocalRequestID = "request_id"
)

// RequestID asigna un identificador de correlación a cada petición y lo
// expone en la cabecera X-Request-Id.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.New().String()
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-Id", id)
		return c.Next()
	}
}

// SessionMiddleware valida el Bearer Token de sesión que emite el login
// externo y carga el actor autenticado en c.Locals. Esta capa nunca emite
// tokens; solo los parsea.
func SessionMiddleware(secret string, log zerolog.Logger) fiber.Handler {
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
		actor, err := session.Parse(secret, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token de sesión rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		if actor.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		c.Locals(LocalActor, actor)
		return c.Next()
	}
}

// GetActor devuelve el actor del contexto (después del middleware de sesión).
func GetActor(c *fiber.Ctx) domain.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return domain.Actor{}
	}
	a, _ := v.(domain.Actor)
	return a
}

// GetRequestID devuelve el id de correlación de la petición.
func GetRequestID(c *fiber.Ctx) string {
	v := c.Locals(LocalRequestID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

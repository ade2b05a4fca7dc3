package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/pkg/jwt"
)

// Claves en c.Locals para la identidad del token.
const (
	LocalUserID   = "user_id"
	LocalUserName = "user_name"
	LocalRole     = "role"
)

// AuthMiddleware valida el JWT (Authorization: Bearer <token>) e inyecta user_id, nombre y rol
// en c.Locals. Responde 401 si falta el token o es inválido.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "falta el header Authorization",
			})
		}
		const prefix = "Bearer "
		if !strings.HasPrefix(auth, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "formato esperado: Bearer <token>",
			})
		}
		id, err := jwt.Parse(secret, strings.TrimSpace(auth[len(prefix):]))
		if err != nil || id.UserID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "token inválido o expirado",
			})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalUserName, id.Name)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Sin roles, cualquier usuario autenticado.
// Debe usarse después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(roles) == 0 {
			return c.Next()
		}
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol '" + role + "' no tiene acceso a este recurso",
		})
	}
}

// GetUserID devuelve el user_id del token (vacío si no hay).
func GetUserID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserID).(string)
	return v
}

// GetUserName devuelve el nombre del usuario autenticado; se registra como autor en los pedidos.
func GetUserName(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUserName).(string)
	return v
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}

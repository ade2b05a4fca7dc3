package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
)

// HeaderAdminPIN header con el PIN de administrador.
const HeaderAdminPIN = "X-Admin-PIN"

// pinVerifier lo implementa *auth.PINGate.
type pinVerifier interface {
	Verify(pin string) bool
}

// RequirePIN exige el PIN de administrador en confirmaciones, ajustes de stock y borrados.
func RequirePIN(gate pinVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gate.Verify(c.Get(HeaderAdminPIN)) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_PIN",
				Message: "PIN de administrador inválido",
			})
		}
		return c.Next()
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
)

// Capability permiso explícito de una cuenta, independiente del rol.
type Capability string

const (
	CapManageAccounts Capability = "manage_accounts"
	CapCreateProducts Capability = "create_products"
	CapAdjustStock    Capability = "adjust_stock"
)

// userLookup lo implementa *usecase.UserUseCase.
type userLookup interface {
	GetByID(id string) (*dto.UserResponse, error)
}

// RequireCapability verifica el permiso contra la cuenta actual y no contra el token, así un
// cambio de permisos aplica sin volver a iniciar sesión.
func RequireCapability(users userLookup, capability Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := users.GetByID(GetUserID(c))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "la cuenta del token ya no existe",
			})
		}
		if !hasCapability(u, capability) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "la cuenta no tiene el permiso " + string(capability),
			})
		}
		return c.Next()
	}
}

func hasCapability(u *dto.UserResponse, capability Capability) bool {
	switch capability {
	case CapManageAccounts:
		return u.CanManageAccounts
	case CapCreateProducts:
		return u.CanCreateProducts
	case CapAdjustStock:
		return u.CanAdjustStock
	}
	return false
}

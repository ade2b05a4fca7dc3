package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/usecase"
)

// UserHandler administración de cuentas (requiere permiso manage_accounts).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar cuentas
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// GetByID godoc
// @Summary      Obtener cuenta
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	u, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(u)
}

// Create godoc
// @Summary      Crear cuenta
// @Description  Los permisos y vistas se asignan según el rol.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nombre, email, password, rol"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	u, err := h.uc.Create(c.Context(), in)
	return mutationResponse(c, fiber.StatusCreated, u, err)
}

// Update godoc
// @Summary      Actualizar cuenta
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.MutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	u, err := h.uc.Update(c.Context(), c.Params("id"), in)
	return mutationResponse(c, fiber.StatusOK, u, err)
}

// Delete godoc
// @Summary      Eliminar cuenta
// @Description  Una cuenta no puede eliminarse a sí misma.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id           path    string  true  "ID de usuario"
// @Param        X-Admin-PIN  header  string  true  "PIN de administrador"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	err := h.uc.Delete(c.Context(), id, GetUserID(c))
	return mutationResponse(c, fiber.StatusOK, fiber.Map{"id": id}, err)
}

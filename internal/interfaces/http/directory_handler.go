package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/usecase"
)

// DirectoryHandler tiendas (modern trade) e influencers.
type DirectoryHandler struct {
	uc *usecase.DirectoryUseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(uc *usecase.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// ListStores godoc
// @Summary      Listar tiendas
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Store
// @Router       /api/stores [get]
func (h *DirectoryHandler) ListStores(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListStores())
}

// CreateStore godoc
// @Summary      Crear tienda
// @Tags         directory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStoreRequest  true  "nombre y sucursales"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stores [post]
func (h *DirectoryHandler) CreateStore(c *fiber.Ctx) error {
	var in dto.CreateStoreRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	s, err := h.uc.CreateStore(c.Context(), in)
	return mutationResponse(c, fiber.StatusCreated, s, err)
}

// DeleteStore godoc
// @Summary      Eliminar tienda
// @Tags         directory
// @Security     Bearer
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id} [delete]
func (h *DirectoryHandler) DeleteStore(c *fiber.Ctx) error {
	id := c.Params("id")
	return mutationResponse(c, fiber.StatusOK, fiber.Map{"id": id}, h.uc.DeleteStore(c.Context(), id))
}

// ListInfluencers godoc
// @Summary      Listar influencers
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Influencer
// @Router       /api/influencers [get]
func (h *DirectoryHandler) ListInfluencers(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListInfluencers())
}

// CreateInfluencer godoc
// @Summary      Crear influencer
// @Tags         directory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInfluencerRequest  true  "nombre"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/influencers [post]
func (h *DirectoryHandler) CreateInfluencer(c *fiber.Ctx) error {
	var in dto.CreateInfluencerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	inf, err := h.uc.CreateInfluencer(c.Context(), in)
	return mutationResponse(c, fiber.StatusCreated, inf, err)
}

// DeleteInfluencer godoc
// @Summary      Eliminar influencer
// @Tags         directory
// @Security     Bearer
// @Param        id   path  string  true  "ID del influencer"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/influencers/{id} [delete]
func (h *DirectoryHandler) DeleteInfluencer(c *fiber.Ctx) error {
	id := c.Params("id")
	return mutationResponse(c, fiber.StatusOK, fiber.Map{"id": id}, h.uc.DeleteInfluencer(c.Context(), id))
}

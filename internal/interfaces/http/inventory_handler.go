package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	appinventory "github.com/laglace/stock-portal/internal/application/inventory"
)

// InventoryHandler ajustes manuales de stock y resumen por canal.
type InventoryHandler struct {
	uc *appinventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appinventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock
// @Description  Suma delta (con signo) al canal indicado, con piso en cero. Delta cero es inválido.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id           path    string                      true  "ID del producto"
// @Param        X-Admin-PIN  header  string                      true  "PIN de administrador"
// @Param        body         body    dto.StockAdjustmentRequest  true  "canal, delta, motivo"
// @Success      200  {object}  dto.MutationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [post]
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.StockAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	p, err := h.uc.Adjust(c.Context(), c.Params("id"), GetUserName(c), in)
	return mutationResponse(c, fiber.StatusOK, p, err)
}

// Summary godoc
// @Summary      Resumen de stock por canal
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryDTO
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

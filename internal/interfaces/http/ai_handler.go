package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/usecase"
)

// AIHandler asesoría de IA sobre inventario y pedidos.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// AnalyzeStock godoc
// @Summary      Analizar conflictos de stock con IA
// @Description  Resume en tailandés el riesgo de quiebre frente a los pedidos pendientes.
// @Description  Si el proveedor falla responde 200 con el texto de respaldo y degraded=true.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AITextResponse
// @Router       /api/ai/analyze [post]
func (h *AIHandler) AnalyzeStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.AnalyzeStockConflict(c.Context()))
}

// Chat godoc
// @Summary      Chat con el asistente de stock
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "historial y mensaje"
// @Success      200   {object}  dto.AITextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Chat(c.Context(), req)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

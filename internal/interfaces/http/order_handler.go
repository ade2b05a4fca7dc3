package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/orders"
	"github.com/laglace/stock-portal/internal/domain/entity"
)

// OrderHandler solicitudes de stock y mesa de bodega.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler de pedidos.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar solicitud de stock
// @Description  Crea un pedido pendiente. Sin po_number se genera PO-YYYYMMDD-XXXXXX.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitOrderRequest  true  "origen, destino e ítems"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/submit [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.uc.Submit(c.Context(), GetUserName(c), in)
	return mutationResponse(c, fiber.StatusCreated, o, err)
}

// Import godoc
// @Summary      Importar pedidos remotos
// @Description  Acepta pedidos completos de la API remota. Ids existentes se ignoran.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  []entity.Order  true  "pedidos"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Import(c *fiber.Ctx) error {
	var in []entity.Order
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Import(c.Context(), in)
	return mutationResponse(c, fiber.StatusOK, res, err)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "pending | confirmed | cancelled | all"
// @Param        source  query  string  false  "canal de origen"
// @Param        search  query  string  false  "producto, sku, id, tienda o influencer"
// @Param        store   query  string  false  "tienda o influencer"
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Success      200     {array}   entity.Order
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	f, err := parseOrderFilter(c)
	if err != nil {
		return invalidQuery(c)
	}
	list, err := h.uc.List(f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	o, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(o)
}

// WarehouseGroups godoc
// @Summary      Pedidos agrupados para bodega
// @Description  Agrupa por destino, sucursal y fecha de solicitud; grupo más reciente primero.
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderGroupDTO
// @Router       /api/orders/warehouse [get]
func (h *OrderHandler) WarehouseGroups(c *fiber.Ctx) error {
	f, err := parseOrderFilter(c)
	if err != nil {
		return invalidQuery(c)
	}
	groups, err := h.uc.WarehouseGroups(f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(groups)
}

// Shipments godoc
// @Summary      Seguimiento de envíos
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderGroupDTO
// @Router       /api/orders/shipments [get]
func (h *OrderHandler) Shipments(c *fiber.Ctx) error {
	f, err := parseOrderFilter(c)
	if err != nil {
		return invalidQuery(c)
	}
	groups, err := h.uc.Shipments(f)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(groups)
}

// Confirm godoc
// @Summary      Confirmar pedido
// @Description  Descuenta el stock del canal. Con strict=true responde 409 si no alcanza.
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id           path    string  true   "ID del pedido"
// @Param        strict       query   bool    false  "rechazar si falta stock"
// @Param        X-Admin-PIN  header  string  true   "PIN de administrador"
// @Success      200  {object}  dto.MutationResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/confirm [post]
func (h *OrderHandler) Confirm(c *fiber.Ctx) error {
	o, err := h.uc.Confirm(c.Context(), c.Params("id"), GetUserName(c), c.QueryBool("strict"))
	return mutationResponse(c, fiber.StatusOK, o, err)
}

// Reject godoc
// @Summary      Rechazar pedido
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        id           path    string  true  "ID del pedido"
// @Param        X-Admin-PIN  header  string  true  "PIN de administrador"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/reject [post]
func (h *OrderHandler) Reject(c *fiber.Ctx) error {
	o, err := h.uc.Reject(c.Context(), c.Params("id"), GetUserName(c))
	return mutationResponse(c, fiber.StatusOK, o, err)
}

// BulkConfirm godoc
// @Summary      Confirmar todos los pendientes
// @Description  Confirma en orden los pedidos que alcanzan stock; los demás quedan pendientes.
// @Tags         warehouse
// @Security     Bearer
// @Produce      json
// @Param        X-Admin-PIN  header  string  true  "PIN de administrador"
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/orders/bulk-confirm [post]
func (h *OrderHandler) BulkConfirm(c *fiber.Ctx) error {
	res, err := h.uc.BulkConfirm(c.Context(), GetUserName(c))
	return mutationResponse(c, fiber.StatusOK, res, err)
}

// AdjustQuantity godoc
// @Summary      Ajustar cantidad final de un ítem
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string                      true  "ID del pedido"
// @Param        productId   path  string                      true  "ID del producto"
// @Param        body        body  dto.AdjustQuantityRequest   true  "cantidad"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items/{productId} [put]
func (h *OrderHandler) AdjustQuantity(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.uc.AdjustQuantity(c.Context(), c.Params("id"), c.Params("productId"), in.Quantity)
	return mutationResponse(c, fiber.StatusOK, o, err)
}

// SetNote godoc
// @Summary      Nota de bodega
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del pedido"
// @Param        body  body  dto.WarehouseNoteRequest  true  "nota"
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/orders/{id}/note [put]
func (h *OrderHandler) SetNote(c *fiber.Ctx) error {
	var in dto.WarehouseNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	o, err := h.uc.SetWarehouseNote(c.Context(), c.Params("id"), in.Note)
	return mutationResponse(c, fiber.StatusOK, o, err)
}

// SetTracking godoc
// @Summary      Número de guía para un grupo de pedidos
// @Tags         warehouse
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TrackingRequest  true  "ids y número de guía"
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/orders/tracking [put]
func (h *OrderHandler) SetTracking(c *fiber.Ctx) error {
	var in dto.TrackingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ids, err := h.uc.SetTrackingNumber(c.Context(), in)
	return mutationResponse(c, fiber.StatusOK, ids, err)
}

func parseOrderFilter(c *fiber.Ctx) (dto.OrderFilter, error) {
	var f dto.OrderFilter
	err := c.QueryParser(&f)
	return f, err
}

func invalidQuery(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laglace/stock-portal/internal/application/dto"
	"github.com/laglace/stock-portal/internal/application/usecase"
)

// SettingsHandler anuncios y fondo de la pantalla de login.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// ListAnnouncements godoc
// @Summary      Listar anuncios
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Announcement
// @Router       /api/announcements [get]
func (h *SettingsHandler) ListAnnouncements(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListAnnouncements())
}

// CreateAnnouncement godoc
// @Summary      Crear anuncio
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AnnouncementRequest  true  "anuncio"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/announcements [post]
func (h *SettingsHandler) CreateAnnouncement(c *fiber.Ctx) error {
	var in dto.AnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	a, err := h.uc.CreateAnnouncement(c.Context(), in)
	return mutationResponse(c, fiber.StatusCreated, a, err)
}

// UpdateAnnouncement godoc
// @Summary      Actualizar anuncio
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del anuncio"
// @Param        body  body  dto.AnnouncementRequest  true  "anuncio"
// @Success      200   {object}  dto.MutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/announcements/{id} [put]
func (h *SettingsHandler) UpdateAnnouncement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidQuery(c)
	}
	var in dto.AnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	a, err := h.uc.UpdateAnnouncement(c.Context(), id, in)
	return mutationResponse(c, fiber.StatusOK, a, err)
}

// DeleteAnnouncement godoc
// @Summary      Eliminar anuncio
// @Tags         settings
// @Security     Bearer
// @Param        id   path  int  true  "ID del anuncio"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/announcements/{id} [delete]
func (h *SettingsHandler) DeleteAnnouncement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return invalidQuery(c)
	}
	return mutationResponse(c, fiber.StatusOK, fiber.Map{"id": id}, h.uc.DeleteAnnouncement(c.Context(), id))
}

// LoginBackground godoc
// @Summary      Fondo de la pantalla de login
// @Description  Público: la pantalla de login lo pide antes de autenticar.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.LoginBackgroundResponse
// @Router       /api/settings/login-background [get]
func (h *SettingsHandler) LoginBackground(c *fiber.Ctx) error {
	return c.JSON(dto.LoginBackgroundResponse{Image: h.uc.LoginBackground()})
}

// SetLoginBackground godoc
// @Summary      Cambiar fondo de login
// @Description  Acepta data URL de imagen o URL http(s).
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginBackgroundRequest  true  "imagen"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/login-background [put]
func (h *SettingsHandler) SetLoginBackground(c *fiber.Ctx) error {
	var in dto.LoginBackgroundRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	err := h.uc.SetLoginBackground(c.Context(), in.Image)
	return mutationResponse(c, fiber.StatusOK, dto.LoginBackgroundResponse{Image: h.uc.LoginBackground()}, err)
}

// ResetLoginBackground godoc
// @Summary      Restaurar fondo de login
// @Tags         settings
// @Security     Bearer
// @Success      200  {object}  dto.MutationResponse
// @Router       /api/settings/login-background [delete]
func (h *SettingsHandler) ResetLoginBackground(c *fiber.Ctx) error {
	err := h.uc.SetLoginBackground(c.Context(), "")
	return mutationResponse(c, fiber.StatusOK, dto.LoginBackgroundResponse{}, err)
}

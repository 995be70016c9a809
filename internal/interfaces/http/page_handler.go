package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/custompage"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
)

// PageHandler páginas de ítems personalizadas.
type PageHandler struct {
	uc *custompage.UseCase
}

func NewPageHandler(uc *custompage.UseCase) *PageHandler {
	return &PageHandler{uc: uc}
}

// Create godoc
// @Summary      Crear página
// @Tags         pages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePageRequest  true  "pharmacy_id, title, month (vacío = mes en curso), items"
// @Success      201  {object}  dto.PageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pages [post]
func (h *PageHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar páginas
// @Tags         pages
// @Security     Bearer
// @Produce      json
// @Param        pharmacy_id  query  string  false  "Filtrar por farmacia"
// @Success      200  {array}  dto.PageDTO
// @Router       /api/pages [get]
func (h *PageHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetTenantID(c), c.Query("pharmacy_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Obtener página con filas clasificadas
// @Tags         pages
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la página"
// @Success      200  {object}  dto.PageDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pages/{id} [get]
func (h *PageHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReplaceItems godoc
// @Summary      Reemplazar ítems de la página
// @Tags         pages
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la página"
// @Param        body  body  dto.ReplaceItemsRequest  true  "Lista completa"
// @Success      200  {object}  dto.PageDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pages/{id}/items [put]
func (h *PageHandler) ReplaceItems(c *fiber.Ctx) error {
	var in dto.ReplaceItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ReplaceItems(c.UserContext(), GetTenantID(c), c.Params("id"), toItems(in.Items))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar página
// @Tags         pages
// @Security     Bearer
// @Param        id  path  string  true  "ID de la página"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pages/{id} [delete]
func (h *PageHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

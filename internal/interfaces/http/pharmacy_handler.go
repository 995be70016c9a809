package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/pharmacy"
)

// PharmacyHandler administración de farmacias y farmacéuticos (solo dueño).
type PharmacyHandler struct {
	uc *pharmacy.AdminUseCase
}

func NewPharmacyHandler(uc *pharmacy.AdminUseCase) *PharmacyHandler {
	return &PharmacyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear farmacia
// @Tags         pharmacies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePharmacyRequest  true  "Datos de la farmacia"
// @Success      201  {object}  dto.PharmacyDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pharmacies [post]
func (h *PharmacyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePharmacyRequest
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
// @Summary      Listar farmacias
// @Tags         pharmacies
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PharmacyDTO
// @Router       /api/pharmacies [get]
func (h *PharmacyHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext(), GetTenantID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Get godoc
// @Summary      Obtener farmacia
// @Tags         pharmacies
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la farmacia"
// @Success      200  {object}  dto.PharmacyDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id} [get]
func (h *PharmacyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar farmacia
// @Tags         pharmacies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la farmacia"
// @Param        body  body  dto.UpdatePharmacyRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.PharmacyDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id} [put]
func (h *PharmacyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePharmacyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar farmacia
// @Description  Falla con 409 si la farmacia aún tiene farmacéuticos.
// @Tags         pharmacies
// @Security     Bearer
// @Param        id  path  string  true  "ID de la farmacia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id} [delete]
func (h *PharmacyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetTenantID(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Details godoc
// @Summary      Detalle de farmacia
// @Description  Farmacia, estadísticas del mes, faltante alto, farmacéuticos y alertas de asistencia.
// @Tags         pharmacies
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID de la farmacia"
// @Param        month  query  string  false  "Mes YYYY-MM"
// @Success      200  {object}  dto.PharmacyDetailsDTO
// @Router       /api/pharmacies/{id}/details [get]
func (h *PharmacyHandler) Details(c *fiber.Ctx) error {
	out, err := h.uc.Details(c.UserContext(), GetTenantID(c), c.Params("id"), monthQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Farmacéuticos ────────────────────────────────────────────────────────────

// CreatePharmacist godoc
// @Summary      Registrar farmacéutico
// @Description  Si se envía id (uid del proveedor de identidad) se usa como ID del farmacéutico.
// @Tags         pharmacists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la farmacia"
// @Param        body  body  dto.PharmacistRequest  true  "Datos del farmacéutico"
// @Success      201  {object}  dto.PharmacistDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id}/pharmacists [post]
func (h *PharmacyHandler) CreatePharmacist(c *fiber.Ctx) error {
	var in dto.PharmacistRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreatePharmacist(c.UserContext(), GetTenantID(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPharmacists godoc
// @Summary      Listar farmacéuticos de una farmacia
// @Tags         pharmacists
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la farmacia"
// @Success      200  {array}  dto.PharmacistDTO
// @Router       /api/pharmacies/{id}/pharmacists [get]
func (h *PharmacyHandler) ListPharmacists(c *fiber.Ctx) error {
	list, err := h.uc.ListPharmacists(c.UserContext(), GetTenantID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// UpdatePharmacist godoc
// @Summary      Actualizar farmacéutico
// @Tags         pharmacists
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id            path  string                 true  "ID de la farmacia"
// @Param        pharmacistId  path  string                 true  "ID del farmacéutico"
// @Param        body          body  dto.PharmacistRequest  true  "Datos del farmacéutico"
// @Success      200  {object}  dto.PharmacistDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id}/pharmacists/{pharmacistId} [put]
func (h *PharmacyHandler) UpdatePharmacist(c *fiber.Ctx) error {
	var in dto.PharmacistRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdatePharmacist(c.UserContext(), GetTenantID(c), c.Params("id"), c.Params("pharmacistId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeletePharmacist godoc
// @Summary      Eliminar farmacéutico
// @Tags         pharmacists
// @Security     Bearer
// @Param        id            path  string  true  "ID de la farmacia"
// @Param        pharmacistId  path  string  true  "ID del farmacéutico"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pharmacies/{id}/pharmacists/{pharmacistId} [delete]
func (h *PharmacyHandler) DeletePharmacist(c *fiber.Ctx) error {
	if err := h.uc.DeletePharmacist(c.UserContext(), GetTenantID(c), c.Params("id"), c.Params("pharmacistId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

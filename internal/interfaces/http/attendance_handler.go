package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/attendance"
	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// AttendanceHandler registro y resumen mensual de asistencia.
type AttendanceHandler struct {
	uc *attendance.UseCase
}

func NewAttendanceHandler(uc *attendance.UseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// Record godoc
// @Summary      Registrar asistencia del día
// @Description  Un registro por farmacéutico y fecha; repetir la fecha lo reemplaza.
// @Description  Un farmacéutico solo puede registrar su propia asistencia.
// @Tags         attendance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordAttendanceRequest  true  "pharmacy_id, pharmacist_id, date (YYYY-MM-DD), status (present | late | absent)"
// @Success      201  {object}  dto.AttendanceDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/attendance [post]
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordAttendanceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if GetRole(c) != entity.RoleOwner && in.PharmacistID != GetUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede registrar su propia asistencia"})
	}
	out, err := h.uc.Record(c.UserContext(), GetTenantID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MonthlySummary godoc
// @Summary      Resumen mensual de asistencia
// @Tags         attendance
// @Security     Bearer
// @Produce      json
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Success      200  {array}  dto.AttendanceSummaryDTO
// @Router       /api/attendance/{pharmacyId}/{month} [get]
func (h *AttendanceHandler) MonthlySummary(c *fiber.Ctx) error {
	list, err := h.uc.MonthlySummary(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// DashboardHandler resumen de todas las farmacias del dueño.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del dueño
// @Description  Estadísticas por farmacia, bandera de faltante alto y totales. Sin month usa el mes en curso.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        month  query  string  false  "Mes YYYY-MM"
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext(), GetTenantID(c), monthQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// monthQuery ?month= o el mes en curso.
func monthQuery(c *fiber.Ctx) string {
	if m := c.Query("month"); m != "" {
		return m
	}
	return entity.CurrentMonth(time.Now())
}

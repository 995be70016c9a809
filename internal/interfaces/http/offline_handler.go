package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/offline"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// OfflineHandler estado de la cola de escrituras pendientes. monitor nil = cola deshabilitada.
type OfflineHandler struct {
	monitor *offline.Monitor
}

func NewOfflineHandler(monitor *offline.Monitor) *OfflineHandler {
	return &OfflineHandler{monitor: monitor}
}

// Status godoc
// @Summary      Estado de la cola offline
// @Tags         offline
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OfflineStatusDTO
// @Router       /api/offline/status [get]
func (h *OfflineHandler) Status(c *fiber.Ctx) error {
	if h.monitor == nil {
		return c.JSON(dto.OfflineStatusDTO{Enabled: false, Online: true})
	}
	out, err := h.monitor.Status(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Replay godoc
// @Summary      Reproducir la cola ahora
// @Description  Aplica las escrituras pendientes en orden; las fallidas se conservan con su último error.
// @Tags         offline
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReplayResultDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/offline/replay [post]
func (h *OfflineHandler) Replay(c *fiber.Ctx) error {
	if h.monitor == nil {
		return writeError(c, domain.ErrOfflineDisabled)
	}
	res, err := h.monitor.ReplayNow(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ReplayResultDTO{Applied: res.Applied, Failed: res.Failed, Remaining: res.Remaining})
}

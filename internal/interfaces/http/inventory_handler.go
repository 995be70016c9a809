package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

const streamKeepAlive = 20 * time.Second

// InventoryHandler hojas de inventario mensuales por farmacia (protegido).
type InventoryHandler struct {
	sheets   *inventory.SheetUseCase
	restock  *inventory.RestockUseCase
	reports  *report.UseCase
	sources  repository.ItemSourceFactory
	settings inventory.Settings
}

// NewInventoryHandler construye el handler. sources y reports pueden ser nil (rutas responden 503).
func NewInventoryHandler(
	sheets *inventory.SheetUseCase,
	restock *inventory.RestockUseCase,
	reports *report.UseCase,
	sources repository.ItemSourceFactory,
	settings inventory.Settings,
) *InventoryHandler {
	return &InventoryHandler{sheets: sheets, restock: restock, reports: reports, sources: sources, settings: settings}
}

// GetSheet godoc
// @Summary      Hoja de inventario del mes
// @Description  Ítems con stock actual y estado (shortage | low_stock | available) más estadísticas.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Success      200  {object}  dto.SheetDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month} [get]
func (h *InventoryHandler) GetSheet(c *fiber.Ctx) error {
	out, err := h.sheets.GetSheet(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ReplaceItems godoc
// @Summary      Reemplazar la lista completa de ítems
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        pharmacyId  path  string                   true  "ID de la farmacia"
// @Param        month       path  string                   true  "Mes YYYY-MM"
// @Param        body        body  dto.ReplaceItemsRequest  true  "Lista completa; números como número o texto"
// @Success      200  {object}  dto.SheetDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month}/items [put]
func (h *InventoryHandler) ReplaceItems(c *fiber.Ctx) error {
	var in dto.ReplaceItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.sheets.ReplaceItems(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"), toItems(in.Items))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar ítem en cero
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        pharmacyId  path  string              true  "ID de la farmacia"
// @Param        month       path  string              true  "Mes YYYY-MM"
// @Param        body        body  dto.AddItemRequest  true  "Nombre del ítem"
// @Success      201  {object}  dto.SheetDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month}/items [post]
func (h *InventoryHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.sheets.AddItem(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"), in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar campos de un ítem
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        pharmacyId  path  string                 true  "ID de la farmacia"
// @Param        month       path  string                 true  "Mes YYYY-MM"
// @Param        name        path  string                 true  "Nombre del ítem (URL-encoded)"
// @Param        body        body  dto.UpdateItemRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.SheetDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month}/items/{name} [patch]
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badBody(c)
	}
	var in dto.UpdateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.sheets.UpdateItem(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"), name, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar un ítem de la hoja
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Param        name        path  string  true  "Nombre del ítem (URL-encoded)"
// @Success      200  {object}  dto.SheetDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month}/items/{name} [delete]
func (h *InventoryHandler) RemoveItem(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return badBody(c)
	}
	out, err := h.sheets.RemoveItem(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RecordMovement godoc
// @Summary      Fijar entrada o dispensación de un día
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        pharmacyId  path  string               true  "ID de la farmacia"
// @Param        month       path  string               true  "Mes YYYY-MM"
// @Param        body        body  dto.MovementRequest  true  "itemName, day (01..31), type (incoming | dispense), quantity"
// @Success      200  {object}  dto.SheetDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month}/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.sheets.RecordMovement(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stats godoc
// @Summary      Estadísticas de la hoja
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Success      200  {object}  dto.StatsDTO
// @Router       /api/inventory/{pharmacyId}/{month}/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	out, err := h.sheets.Stats(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Ítems que necesitan reposición
// @Description  Consumo medio de los últimos meses contra el stock actual, ordenado por necesidad.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Success      200  {array}   dto.RestockItemDTO
// @Router       /api/inventory/{pharmacyId}/{month}/restock [get]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	list, err := h.restock.NeedsRestock(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// Report godoc
// @Summary      Reporte PDF del inventario mensual
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{pharmacyId}/{month}/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	if h.reports == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "REPORTS_DISABLED", Message: "reportes no configurados"})
	}
	pdf, filename, err := h.reports.MonthlyInventoryPDF(c.UserContext(), GetTenantID(c), c.Params("pharmacyId"), c.Params("month"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// Stream godoc
// @Summary      Estadísticas en vivo (Server-Sent Events)
// @Description  Emite un evento "stats" cada vez que cambia la hoja y "error" si la suscripción falla.
// @Tags         inventory
// @Security     Bearer
// @Produce      text/event-stream
// @Param        pharmacyId  path  string  true  "ID de la farmacia"
// @Param        month       path  string  true  "Mes YYYY-MM"
// @Success      200  {object}  dto.StatsDTO
// @Router       /api/inventory/{pharmacyId}/{month}/stream [get]
func (h *InventoryHandler) Stream(c *fiber.Ctx) error {
	tenantID, pharmacyID, month := GetTenantID(c), c.Params("pharmacyId"), c.Params("month")
	if err := inventory.ValidateScope(tenantID, pharmacyID, month); err != nil {
		return writeError(c, err)
	}
	if h.sources == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STREAM_DISABLED", Message: "suscripción no disponible"})
	}

	source := h.sources.Source(tenantID, pharmacyID, month)
	settings := h.settings

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	// El writer corre después de que el handler retorna: no usar c dentro.
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		streamStats(w, source, settings)
	})
	return nil
}

type sheetEvent struct {
	items []entity.InventoryItem
	err   error
}

// streamStats termina cuando el cliente se desconecta (falla el Flush) o la suscripción reporta error.
func streamStats(w *bufio.Writer, source repository.ItemSource, settings inventory.Settings) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan sheetEvent, 4)
	unsubscribe, err := source.Subscribe(ctx, func(items []entity.InventoryItem, err error) {
		select {
		case events <- sheetEvent{items: items, err: err}:
		case <-ctx.Done():
		}
	})
	if err != nil {
		_ = writeSSE(w, "error", dto.ErrorResponse{Code: "SUBSCRIBE_FAILED", Message: err.Error()})
		return
	}
	defer unsubscribe()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case ev := <-events:
			if ev.err != nil {
				_ = writeSSE(w, "error", dto.ErrorResponse{Code: "STREAM_ERROR", Message: ev.err.Error()})
				return
			}
			if err := writeSSE(w, "stats", inventory.StatsOf(ev.items, settings)); err != nil {
				return
			}
		case <-keepAlive.C:
			if _, err := w.WriteString(": ping\n\n"); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}
}

func writeSSE(w *bufio.Writer, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}

func toItems(in []dto.ItemInput) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0, len(in))
	for _, it := range in {
		out = append(out, it.ToEntity())
	}
	return out
}

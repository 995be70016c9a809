package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/attendance"
	"github.com/jhoicas/Farmacia-api/internal/application/custompage"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/offline"
	"github.com/jhoicas/Farmacia-api/internal/application/pharmacy"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/domain/tenant"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SheetUC      *inventory.SheetUseCase
	RestockUC    *inventory.RestockUseCase
	ReportUC     *report.UseCase
	Sources      repository.ItemSourceFactory
	Settings     inventory.Settings
	DashboardUC  *appanalytics.DashboardUseCase
	PharmacyUC   *pharmacy.AdminUseCase
	AttendanceUC *attendance.UseCase
	PageUC       *custompage.UseCase
	// Monitor nil = cola offline deshabilitada.
	Monitor  *offline.Monitor
	Verifier SessionVerifier
	Profiles tenant.ProfileCache
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := api.Group("/", AuthMiddleware(deps.Verifier, deps.Profiles))
	ownerOnly := RequireRole(entity.RoleOwner)

	// Hojas de inventario (dueño y farmacéutico)
	inv := protected.Group("/inventory/:pharmacyId/:month")
	inventoryHandler := NewInventoryHandler(deps.SheetUC, deps.RestockUC, deps.ReportUC, deps.Sources, deps.Settings)
	inv.Get("/", inventoryHandler.GetSheet)
	inv.Put("/items", inventoryHandler.ReplaceItems)
	inv.Post("/items", inventoryHandler.AddItem)
	inv.Patch("/items/:name", inventoryHandler.UpdateItem)
	inv.Delete("/items/:name", inventoryHandler.RemoveItem)
	inv.Post("/movements", inventoryHandler.RecordMovement)
	inv.Get("/stats", inventoryHandler.Stats)
	inv.Get("/restock", inventoryHandler.Restock)
	inv.Get("/stream", inventoryHandler.Stream)
	inv.Get("/report", inventoryHandler.Report)

	// Dashboard (solo dueño)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", ownerOnly, dashboardHandler.GetSummary)

	// Farmacias y farmacéuticos (solo dueño)
	pharmacies := protected.Group("/pharmacies", ownerOnly)
	pharmacyHandler := NewPharmacyHandler(deps.PharmacyUC)
	pharmacies.Post("/", pharmacyHandler.Create)
	pharmacies.Get("/", pharmacyHandler.List)
	pharmacies.Get("/:id", pharmacyHandler.Get)
	pharmacies.Put("/:id", pharmacyHandler.Update)
	pharmacies.Delete("/:id", pharmacyHandler.Delete)
	pharmacies.Get("/:id/details", pharmacyHandler.Details)
	pharmacies.Post("/:id/pharmacists", pharmacyHandler.CreatePharmacist)
	pharmacies.Get("/:id/pharmacists", pharmacyHandler.ListPharmacists)
	pharmacies.Put("/:id/pharmacists/:pharmacistId", pharmacyHandler.UpdatePharmacist)
	pharmacies.Delete("/:id/pharmacists/:pharmacistId", pharmacyHandler.DeletePharmacist)

	// Asistencia
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	protected.Post("/attendance", attendanceHandler.Record)
	protected.Get("/attendance/:pharmacyId/:month", attendanceHandler.MonthlySummary)

	// Páginas personalizadas
	pages := protected.Group("/pages")
	pageHandler := NewPageHandler(deps.PageUC)
	pages.Post("/", pageHandler.Create)
	pages.Get("/", pageHandler.List)
	pages.Get("/:id", pageHandler.Get)
	pages.Put("/:id/items", pageHandler.ReplaceItems)
	pages.Delete("/:id", pageHandler.Delete)

	// Cola offline
	offlineHandler := NewOfflineHandler(deps.Monitor)
	protected.Get("/offline/status", offlineHandler.Status)
	protected.Post("/offline/replay", ownerOnly, offlineHandler.Replay)
}

// @title                       Farmacia API
// @version                     1.0
// @description                 Inventario mensual de farmacias: hojas de stock, reposición, asistencia y cola offline.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/Farmacia-api/docs"
	appanalytics "github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/attendance"
	"github.com/jhoicas/Farmacia-api/internal/application/custompage"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/offline"
	"github.com/jhoicas/Farmacia-api/internal/application/pharmacy"
	"github.com/jhoicas/Farmacia-api/internal/application/report"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/domain/tenant"
	infrafirebase "github.com/jhoicas/Farmacia-api/internal/infrastructure/firebase"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/firestoredb"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/gcs"
	infrapdf "github.com/jhoicas/Farmacia-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Farmacia-api/internal/interfaces/http"
	"github.com/jhoicas/Farmacia-api/pkg/config"
	"github.com/jhoicas/Farmacia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("auth", cfg.Auth.Provider).
		Bool("offline", cfg.Offline.Enabled).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	fsClient, err := firestoredb.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Firestore")
	}
	defer fsClient.Close()

	inventoryRepo := firestoredb.NewInventoryRepository(fsClient)
	consumptionRepo := firestoredb.NewConsumptionRepository(fsClient)
	pharmacyRepo := firestoredb.NewPharmacyRepository(fsClient)
	pharmacistRepo := firestoredb.NewPharmacistRepository(fsClient)
	attendanceRepo := firestoredb.NewAttendanceRepository(fsClient)
	pageRepo := firestoredb.NewCustomPageRepository(fsClient)

	settings := inventory.Settings{
		MinStockDefault:   cfg.Stock.MinStockDefault,
		ConsumptionWindow: cfg.Stock.ConsumptionWindow,
		FallbackMean:      cfg.Stock.FallbackMean,
		HighShortageRatio: cfg.Stock.HighShortageRatio,
	}

	// Cola offline: PostgreSQL guarda escrituras pendientes, copia de hojas y perfiles.
	// Sin cola las escrituras van directo a Firestore.
	var (
		sheetStore  inventory.SheetStore = inventory.DirectStore{Repo: inventoryRepo}
		pageWriter  custompage.ItemsWriter
		profiles    repository.ProfileStore
		tenantCache tenant.ProfileCache
		monitor     *offline.Monitor
	)
	if cfg.Offline.Enabled {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del almacenamiento local")
		}

		offlineLog := log.WithComponent("offline")
		queue := offline.NewQueue(postgres.NewPendingWriteRepository(pool), offlineLog)
		monitor = offline.NewMonitor(fsClient, queue, offline.NewApplier(inventoryRepo, pageRepo), cfg.Offline.PingInterval, offlineLog)
		sheetStore = offline.NewInventoryStore(inventoryRepo, postgres.NewSheetCacheRepository(pool), queue, monitor, offlineLog)
		pageWriter = offline.NewPageStore(pageRepo, queue, monitor)

		profileRepo := postgres.NewProfileRepository(pool)
		profiles = profileRepo
		tenantCache = profileRepo

		go monitor.Run(ctx)
	}

	var verifier httpRouter.SessionVerifier = httpRouter.JWTVerifier{Secret: cfg.JWT.Secret}
	if cfg.Auth.Provider == config.AuthProviderFirebase {
		authClient, err := infrafirebase.NewAuthClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Firebase Auth")
		}
		verifier = infrafirebase.NewTokenVerifier(authClient)
	}

	// Copia de los reportes PDF en GCS solo si hay bucket configurado.
	var archive report.Archive
	if cfg.Reports.Bucket != "" {
		storageClient, err := gcs.NewClient(ctx, cfg.Firestore.CredentialsFile)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Cloud Storage")
		}
		defer storageClient.Close()
		archive = gcs.NewReportArchive(storageClient, cfg.Reports.Bucket)
	}

	sheetUC := inventory.NewSheetUseCase(sheetStore, settings)
	restockUC := inventory.NewRestockUseCase(sheetStore, consumptionRepo, settings)
	attendanceUC := attendance.NewUseCase(attendanceRepo, pharmacistRepo, cfg.Stock.AttendanceAlertThreshold)
	dashboardUC := appanalytics.NewDashboardUseCase(pharmacyRepo, sheetStore, settings, log.WithComponent("dashboard"))
	pharmacyUC := pharmacy.NewAdminUseCase(pharmacyRepo, pharmacistRepo, profiles, sheetStore, attendanceUC, settings, log.WithComponent("pharmacy"))
	pageUC := custompage.NewUseCase(pageRepo, pageWriter, settings)

	// PDF: reporte mensual de inventario por farmacia
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := report.NewUseCase(pharmacyRepo, sheetStore, pdfGenerator, archive, settings, log.WithComponent("report"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Second * 60,
		// Sin WriteTimeout: el stream SSE mantiene la respuesta abierta.
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.WithComponent("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		online := true
		if monitor != nil {
			if st, err := monitor.Status(c.UserContext()); err == nil {
				online = st.Online
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store_online": online})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SheetUC:      sheetUC,
		RestockUC:    restockUC,
		ReportUC:     reportUC,
		Sources:      inventoryRepo,
		Settings:     settings,
		DashboardUC:  dashboardUC,
		PharmacyUC:   pharmacyUC,
		AttendanceUC: attendanceUC,
		PageUC:       pageUC,
		Monitor:      monitor,
		Verifier:     verifier,
		Profiles:     tenantCache,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

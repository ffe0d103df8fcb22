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

	"github.com/gestistock/wms-api/internal/application/alert"
	"github.com/gestistock/wms-api/internal/application/location"
	"github.com/gestistock/wms-api/internal/application/movement"
	"github.com/gestistock/wms-api/internal/application/report"
	"github.com/gestistock/wms-api/internal/application/stock"
	"github.com/gestistock/wms-api/internal/application/usecase"
	"github.com/gestistock/wms-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestistock/wms-api/internal/interfaces/http"
	"github.com/gestistock/wms-api/pkg/config"
	"github.com/gestistock/wms-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("charger la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	stockRepo := postgres.NewStockRepository(pool)
	receptionRepo := postgres.NewReceptionRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportingRepo := postgres.NewReportingRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	stockUC := stock.NewUseCase(stockRepo)
	movementUC := movement.NewUseCase(txRunner, receptionRepo, shipmentRepo, transferRepo)
	alertUC := alert.NewUseCase(stockRepo, settingsRepo, cfg.Alerts)
	reportUC := report.NewUseCase(reportingRepo, settingsRepo, alertUC, log)
	locationUC := location.NewUseCase(locationRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	maintenanceUC := usecase.NewMaintenanceUseCase(
		stockRepo, receptionRepo, shipmentRepo, transferRepo,
		locationRepo, userRepo, settingsRepo, log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GestiStock WMS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:       stockUC,
		MovementUC:    movementUC,
		AlertUC:       alertUC,
		ReportUC:      reportUC,
		LocationUC:    locationUC,
		UserUC:        userUC,
		SettingsUC:    settingsUC,
		MaintenanceUC: maintenanceUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP terminé")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gestistock/wms-api/internal/application/alert"
	"github.com/gestistock/wms-api/internal/application/location"
	"github.com/gestistock/wms-api/internal/application/movement"
	"github.com/gestistock/wms-api/internal/application/report"
	"github.com/gestistock/wms-api/internal/application/stock"
	"github.com/gestistock/wms-api/internal/application/usecase"
)

// RouterDeps dépendances du router.
type RouterDeps struct {
	StockUC       *stock.UseCase
	MovementUC    *movement.UseCase
	AlertUC       *alert.UseCase
	ReportUC      *report.UseCase
	LocationUC    *location.UseCase
	UserUC        *usecase.UserUseCase
	SettingsUC    *usecase.SettingsUseCase
	MaintenanceUC *usecase.MaintenanceUseCase
}

// Router enregistre les routes de l'API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Grand livre de stock
	stocks := api.Group("/stocks")
	stockHandler := NewStockHandler(deps.StockUC)
	stocks.Get("/", stockHandler.List)
	stocks.Post("/", stockHandler.Add)
	stocks.Delete("/", stockHandler.Clear)
	stocks.Get("/references", stockHandler.References)
	stocks.Post("/import", stockHandler.Import)
	stocks.Get("/:reference/solde", stockHandler.Balance)
	stocks.Delete("/:reference", stockHandler.DeleteReference)

	// Réceptions
	receptions := api.Group("/receptions")
	receptionHandler := NewReceptionHandler(deps.MovementUC)
	receptions.Post("/", receptionHandler.Create)
	receptions.Get("/", receptionHandler.List)
	receptions.Delete("/", receptionHandler.Clear)
	receptions.Delete("/:id", receptionHandler.Delete)

	// Expéditions
	expeditions := api.Group("/expeditions")
	shipmentHandler := NewShipmentHandler(deps.MovementUC)
	expeditions.Post("/", shipmentHandler.Create)
	expeditions.Get("/", shipmentHandler.List)
	expeditions.Delete("/", shipmentHandler.Clear)
	expeditions.Delete("/:numero", shipmentHandler.Delete)

	// Transferts
	transferts := api.Group("/transferts")
	transferHandler := NewTransferHandler(deps.MovementUC)
	transferts.Post("/", transferHandler.Create)
	transferts.Get("/", transferHandler.List)
	transferts.Delete("/", transferHandler.Clear)
	transferts.Delete("/:id", transferHandler.Delete)

	// Emplacements
	emplacements := api.Group("/emplacements")
	locationHandler := NewLocationHandler(deps.LocationUC)
	emplacements.Post("/", locationHandler.Create)
	emplacements.Get("/", locationHandler.List)
	emplacements.Delete("/", locationHandler.Clear)
	emplacements.Get("/disponibles", locationHandler.Available)
	emplacements.Get("/stats", locationHandler.Stats)
	emplacements.Delete("/:code", locationHandler.Delete)

	// Alertes
	alertes := api.Group("/alertes")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertes.Get("/", alertHandler.List)
	alertes.Get("/count", alertHandler.Count)

	// Rapports
	rapports := api.Group("/rapports")
	reportHandler := NewReportHandler(deps.ReportUC)
	rapports.Get("/kpis", reportHandler.KPIs)
	rapports.Get("/top-references", reportHandler.TopReferences)
	rapports.Get("/emplacements", reportHandler.ByLocation)
	rapports.Get("/zones", reportHandler.ByZone)
	rapports.Get("/mouvements", reportHandler.Movements)

	// Opérateurs
	utilisateurs := api.Group("/utilisateurs")
	userHandler := NewUserHandler(deps.UserUC)
	utilisateurs.Post("/", userHandler.Create)
	utilisateurs.Get("/", userHandler.List)
	utilisateurs.Delete("/:nom", userHandler.Delete)

	// Paramètres
	parametres := api.Group("/parametres")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	parametres.Get("/", settingsHandler.List)
	parametres.Delete("/", settingsHandler.Reset)
	parametres.Put("/seuils", settingsHandler.SaveThresholds)
	parametres.Put("/entrepot", settingsHandler.SaveWarehouse)
	parametres.Put("/prix-unitaire", settingsHandler.SaveUnitCost)

	// Administration
	admin := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.MaintenanceUC)
	admin.Delete("/historique", adminHandler.ClearHistory)
	admin.Delete("/lots", adminHandler.ClearLots)
	admin.Post("/reset", adminHandler.Reset)
}

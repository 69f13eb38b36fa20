package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/LuisGuzman07/backend-smart/internal/core/export"
	"github.com/LuisGuzman07/backend-smart/internal/core/storage"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/handlers"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/repositories"
	"github.com/LuisGuzman07/backend-smart/internal/modules/analitica/services"
	"github.com/LuisGuzman07/backend-smart/internal/shared/config"
	"github.com/LuisGuzman07/backend-smart/internal/shared/database"
	"github.com/LuisGuzman07/backend-smart/internal/shared/utils"

	_ "github.com/LuisGuzman07/backend-smart/docs"
)

// @title Smart Gestión API
// @version 1.0
// @description API de reportes con lenguaje natural para el sistema de gestión
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	// Load config
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Init report storage
	store, err := storage.NewReportStore(cfg.StoragePath)
	if err != nil {
		log.Fatalf("❌ Failed to init report storage: %v", err)
	}

	// Init services
	reporteRepo := repositories.NewReporteRepo(db.GORM)
	queryBuilder := services.NewQueryBuilder(db.GORM)
	exportService := export.NewService()
	reportService := services.NewReportService(reporteRepo, queryBuilder, exportService, store)

	// Init handlers
	reporteHandler := handlers.NewReporteHandler(reportService)

	// Scheduler (optional)
	if cfg.EnableScheduler {
		scheduler := services.NewReportScheduler(reportService)
		if err := scheduler.Start(); err != nil {
			log.Fatalf("❌ Failed to start report scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Smart Gestión API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "api",
		})
	})

	// Report routes
	reportes := app.Group("/api/analitica/reportes")
	reportes.Get("/entidades", reporteHandler.ListEntidades)
	reportes.Get("/entidades/:id/campos", reporteHandler.GetCamposEntidad)
	reportes.Get("/ejemplos-nl", reporteHandler.ListEjemplos)
	reportes.Get("/disponibles", reporteHandler.ListDisponibles)
	reportes.Post("/interpretar", reporteHandler.Interpretar)
	reportes.Post("/generar-natural", reporteHandler.GenerarNatural)
	reportes.Post("/generar-personalizado", reporteHandler.GenerarPersonalizado)
	reportes.Post("/generar-estatico", reporteHandler.GenerarEstatico)
	reportes.Get("/historial", reporteHandler.Historial)
	reportes.Get("/:id/descargar", reporteHandler.Descargar)

	log.Printf("✅ api running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

package router

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/handlers"
	"github.com/mukeshkumar286/chickegg/internal/repositories"
	"github.com/mukeshkumar286/chickegg/internal/services"
)

// Setup wires repositories, services and handlers onto the engine. Every
// dependency flows in through constructors; nothing reads package state.
func Setup(engine *gin.Engine, db *sql.DB) {
	authRepo := repositories.NewAuthRepository(db)
	financialRepo := repositories.NewFinancialRepository(db)
	productionRepo := repositories.NewProductionRepository(db)
	chickenRepo := repositories.NewChickenRepository(db)
	healthRepo := repositories.NewHealthRepository(db)
	maintenanceRepo := repositories.NewMaintenanceRepository(db)
	researchRepo := repositories.NewResearchRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)

	authService := services.NewAuthService(authRepo, db)
	financialService := services.NewFinancialService(financialRepo, db)
	productionService := services.NewProductionService(productionRepo, db)
	chickenService := services.NewChickenService(chickenRepo, db)
	healthService := services.NewHealthService(healthRepo, chickenRepo, db)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, db)
	researchService := services.NewResearchService(researchRepo, db)
	inventoryService := services.NewInventoryService(inventoryRepo, db)

	authHandler := handlers.NewAuthHandler(authService)
	financialHandler := handlers.NewFinancialHandler(financialService)
	productionHandler := handlers.NewProductionHandler(productionService)
	chickenHandler := handlers.NewChickenHandler(chickenService)
	healthHandler := handlers.NewHealthHandler(healthService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	researchHandler := handlers.NewResearchHandler(researchService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)
	SetupFinancialRoutes(apiV1, financialHandler)
	SetupProductionRoutes(apiV1, productionHandler)
	SetupChickenRoutes(apiV1, chickenHandler)
	SetupHealthRoutes(apiV1, healthHandler)
	SetupMaintenanceRoutes(apiV1, maintenanceHandler)
	SetupResearchRoutes(apiV1, researchHandler)
	SetupInventoryRoutes(apiV1, inventoryHandler)
}

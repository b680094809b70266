package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mukeshkumar286/chickegg/internal/handlers"
	"github.com/mukeshkumar286/chickegg/internal/middleware"
)

// SetupAuthRoutes sets up the authentication routes. Register and login are
// public; the profile endpoint requires a valid token.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)

		authRequired := authRoutes.Group("")
		authRequired.Use(middleware.AuthMiddleware())
		{
			authRequired.GET("/me", authHandler.GetProfile)
		}
	}
}

// SetupFinancialRoutes sets up the ledger routes. Only the listing endpoint
// is gated by authentication; everything else is open like the rest of the
// API.
func SetupFinancialRoutes(apiGroup *gin.RouterGroup, financialHandler *handlers.FinancialHandler) {
	financialRoutes := apiGroup.Group("/financials")
	{
		financialRoutes.POST("", financialHandler.CreateFinancialEntry)
		financialRoutes.GET("", middleware.AuthMiddleware(), financialHandler.GetFinancialEntries)
		financialRoutes.GET("/summary", financialHandler.GetFinancialSummary)
		financialRoutes.GET("/:id", financialHandler.GetFinancialEntryByID)
		financialRoutes.PUT("/:id", financialHandler.UpdateFinancialEntry)
		financialRoutes.DELETE("/:id", financialHandler.DeleteFinancialEntry)
	}
}

// SetupProductionRoutes sets up the egg production routes.
func SetupProductionRoutes(apiGroup *gin.RouterGroup, productionHandler *handlers.ProductionHandler) {
	productionRoutes := apiGroup.Group("/production")
	{
		productionRoutes.POST("", productionHandler.CreateProductionRecord)
		productionRoutes.GET("", productionHandler.GetProductionRecords)
		productionRoutes.GET("/summary", productionHandler.GetProductionSummary)
		productionRoutes.GET("/:id", productionHandler.GetProductionRecordByID)
		productionRoutes.PUT("/:id", productionHandler.UpdateProductionRecord)
		productionRoutes.DELETE("/:id", productionHandler.DeleteProductionRecord)
	}
}

// SetupChickenRoutes sets up the chicken batch routes.
func SetupChickenRoutes(apiGroup *gin.RouterGroup, chickenHandler *handlers.ChickenHandler) {
	chickenRoutes := apiGroup.Group("/chickens")
	{
		chickenRoutes.POST("", chickenHandler.CreateChickenBatch)
		chickenRoutes.GET("", chickenHandler.GetChickenBatches)
		chickenRoutes.GET("/by-batch/:batchId", chickenHandler.GetChickenBatchByBatchID)
		chickenRoutes.GET("/:id", chickenHandler.GetChickenBatchByID)
		chickenRoutes.PUT("/:id", chickenHandler.UpdateChickenBatch)
		chickenRoutes.DELETE("/:id", chickenHandler.DeleteChickenBatch)
	}
}

// SetupHealthRoutes sets up the health record routes.
func SetupHealthRoutes(apiGroup *gin.RouterGroup, healthHandler *handlers.HealthHandler) {
	healthRoutes := apiGroup.Group("/health")
	{
		healthRoutes.POST("", healthHandler.CreateHealthRecord)
		healthRoutes.GET("", healthHandler.GetHealthRecords)
		healthRoutes.GET("/summary", healthHandler.GetHealthSummary)
		healthRoutes.GET("/:id", healthHandler.GetHealthRecordByID)
		healthRoutes.PUT("/:id", healthHandler.UpdateHealthRecord)
		healthRoutes.DELETE("/:id", healthHandler.DeleteHealthRecord)
	}
}

// SetupMaintenanceRoutes sets up the maintenance task routes.
func SetupMaintenanceRoutes(apiGroup *gin.RouterGroup, maintenanceHandler *handlers.MaintenanceHandler) {
	maintenanceRoutes := apiGroup.Group("/maintenance")
	{
		maintenanceRoutes.POST("", maintenanceHandler.CreateMaintenanceTask)
		maintenanceRoutes.GET("", maintenanceHandler.GetMaintenanceTasks)
		maintenanceRoutes.GET("/:id", maintenanceHandler.GetMaintenanceTaskByID)
		maintenanceRoutes.PUT("/:id", maintenanceHandler.UpdateMaintenanceTask)
		maintenanceRoutes.DELETE("/:id", maintenanceHandler.DeleteMaintenanceTask)
		maintenanceRoutes.POST("/:id/toggle", maintenanceHandler.ToggleMaintenanceTask)
	}
}

// SetupResearchRoutes sets up the research note routes.
func SetupResearchRoutes(apiGroup *gin.RouterGroup, researchHandler *handlers.ResearchHandler) {
	researchRoutes := apiGroup.Group("/research")
	{
		researchRoutes.POST("", researchHandler.CreateResearchNote)
		researchRoutes.GET("", researchHandler.GetResearchNotes)
		researchRoutes.GET("/:id", researchHandler.GetResearchNoteByID)
		researchRoutes.PUT("/:id", researchHandler.UpdateResearchNote)
		researchRoutes.DELETE("/:id", researchHandler.DeleteResearchNote)
	}
}

// SetupInventoryRoutes sets up the inventory routes.
func SetupInventoryRoutes(apiGroup *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventoryRoutes := apiGroup.Group("/inventory")
	{
		inventoryRoutes.POST("", inventoryHandler.CreateInventoryItem)
		inventoryRoutes.GET("", inventoryHandler.GetInventoryItems)
		inventoryRoutes.GET("/:id", inventoryHandler.GetInventoryItemByID)
		inventoryRoutes.PUT("/:id", inventoryHandler.UpdateInventoryItem)
		inventoryRoutes.DELETE("/:id", inventoryHandler.DeleteInventoryItem)
		inventoryRoutes.POST("/:id/adjust", inventoryHandler.AdjustInventoryQuantity)
	}
}

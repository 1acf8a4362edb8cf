package router

import (
	"github.com/gin-gonic/gin"

	"solarops/internal/handler"
	"solarops/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	materialH *handler.MaterialHandler,
	stockH *handler.StockHandler,
	projectH *handler.ProjectHandler,
	purchaseH *handler.PurchaseHandler,
	invoiceH *handler.InvoiceHandler,
	statsH *handler.StatsHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Material catalog
	materials := v1.Group("/materials")
	materials.POST("", materialH.Create)
	materials.GET("", materialH.List)
	materials.GET("/:id", materialH.GetByID)
	materials.PUT("/:id", materialH.Update)
	materials.DELETE("/:id", materialH.Delete)

	// Stock levels and movements. Fixed segments come before the
	// material-ID parameter so gin does not treat them as IDs.
	stock := v1.Group("/stock")
	stock.GET("", stockH.List)
	stock.GET("/low", stockH.ListLow)
	stock.GET("/movements", stockH.ListMovements)
	stock.POST("/movement", stockH.RecordMovement)
	stock.GET("/:material_id", stockH.GetByMaterial)
	stock.PUT("/:material_id", stockH.Update)

	// Installation projects
	projects := v1.Group("/projects")
	projects.POST("", projectH.Create)
	projects.GET("", projectH.List)
	projects.GET("/:id", projectH.GetByID)
	projects.PUT("/:id", projectH.Update)
	projects.DELETE("/:id", projectH.Delete)
	projects.GET("/:id/materials", projectH.ListMaterials)
	projects.POST("/:id/materials", projectH.AddMaterial)
	projects.PUT("/:id/materials/:material_id", projectH.UpdateMaterial)
	projects.DELETE("/:id/materials/:material_id", projectH.RemoveMaterial)
	projects.POST("/:id/use-materials", projectH.UseMaterials)
	projects.GET("/:id/export-pdf", projectH.ExportPDF)

	// Purchases
	purchases := v1.Group("/purchases")
	purchases.POST("", purchaseH.Create)
	purchases.GET("", purchaseH.List)
	purchases.POST("/parse-preview", purchaseH.ParsePreview)
	purchases.GET("/:id", purchaseH.GetByID)

	// Supplier invoices
	invoices := v1.Group("/invoices")
	invoices.GET("", invoiceH.List)
	invoices.POST("/upload", invoiceH.Upload)
	invoices.GET("/:id", invoiceH.GetByID)
	invoices.GET("/:id/download", invoiceH.DownloadURL)

	// Dashboard and exports
	v1.GET("/dashboard/stats", statsH.Dashboard)
	export := v1.Group("/export")
	export.GET("/materials.csv", exportH.MaterialsCSV)
	export.GET("/materials.xlsx", exportH.MaterialsXLSX)
	export.GET("/movements.xlsx", exportH.MovementsXLSX)

	return r
}

// SetupParser configures the Gin engine for the standalone XML parser service.
func SetupParser(token string, parserH *handler.ParserHandler) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	r.GET("/", parserH.Index)
	r.GET("/health", parserH.Health)
	r.POST("/parse", middleware.APIToken(token), parserH.Parse)

	return r
}

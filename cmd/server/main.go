package main

import (
	"fmt"
	"log"

	"solarops/internal/config"
	"solarops/internal/docparse"
	"solarops/internal/handler"
	"solarops/internal/repository/postgres"
	"solarops/internal/router"
	"solarops/internal/service"
	s3storage "solarops/internal/storage/s3"
	"solarops/internal/xmlclient"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	materialRepo := postgres.NewMaterialRepo(db)
	stockRepo := postgres.NewStockRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage and external clients
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	parserClient := xmlclient.New(&cfg.XMLParser)

	// Initialize services
	stockSvc := service.NewStockService(stockRepo, materialRepo)
	materialSvc := service.NewMaterialService(materialRepo, stockRepo)
	projectSvc := service.NewProjectService(projectRepo, materialRepo, stockSvc)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, stockSvc, docparse.New())
	invoiceSvc := service.NewInvoiceService(invoiceRepo, purchaseRepo, s3Client, parserClient, cfg.S3.Bucket)
	statsSvc := service.NewStatsService(statsRepo)
	exportSvc := service.NewExportService(materialRepo, stockRepo)

	// Initialize handlers
	maxFileSize := cfg.Upload.MaxFileSizeBytes()
	materialH := handler.NewMaterialHandler(materialSvc)
	stockH := handler.NewStockHandler(stockSvc)
	projectH := handler.NewProjectHandler(projectSvc)
	purchaseH := handler.NewPurchaseHandler(purchaseSvc, maxFileSize)
	invoiceH := handler.NewInvoiceHandler(invoiceSvc, maxFileSize)
	statsH := handler.NewStatsHandler(statsSvc)
	exportH := handler.NewExportHandler(exportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins,
		materialH, stockH, projectH, purchaseH, invoiceH, statsH, exportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

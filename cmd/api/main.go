package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/PoseidonKRL/ControlFin/internal/config"
	"github.com/PoseidonKRL/ControlFin/internal/database"
	"github.com/PoseidonKRL/ControlFin/internal/handlers"
	"github.com/PoseidonKRL/ControlFin/internal/logger"
	"github.com/PoseidonKRL/ControlFin/internal/middleware"
	"github.com/PoseidonKRL/ControlFin/internal/services"
	"github.com/PoseidonKRL/ControlFin/internal/storage"
	"github.com/PoseidonKRL/ControlFin/internal/validator"

	_ "github.com/PoseidonKRL/ControlFin/internal/docs" // Swagger docs
)

// @title           ControlFin API
// @version         1.0
// @description     ControlFin is a personal finance tracker: record income and expense transactions, itemize them into sub-items, and view aggregated reports over arbitrary time windows.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	// Initialize storage and services
	repo := storage.NewRepository(dbManager.DB())
	transactionService := services.NewTransactionService(repo)
	categoryService := services.NewCategoryService(repo, repo)
	reportService := services.NewReportService(repo, appConfig.ReportLocale)
	exportService := services.NewExportService(repo, appConfig.ReportLocale, appConfig.DefaultCurrency)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.OwnerKey())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+middleware.OwnerKeyHeader)

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.POST("/:id/subitems", transactionHandler.CreateSubItem)

	// Category routes
	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/monthly", reportHandler.MonthlySeries)
	reports.GET("/categories", reportHandler.CategoryBreakdown)
	reports.GET("/balance", reportHandler.BalanceEvolution)

	// Export route
	v1.GET("/export", exportHandler.ExportCSV)

	addr := ":" + appConfig.Port
	log.Infof("Starting ControlFin API on %s", addr)
	return router.Run(addr)
}

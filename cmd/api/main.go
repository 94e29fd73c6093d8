package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autoparts/inventory-service/config"
	"github.com/autoparts/inventory-service/internal/logger"
	"github.com/autoparts/inventory-service/internal/server"
	"github.com/autoparts/inventory-service/internal/storage/postgres"

	catHandlerPkg "github.com/autoparts/inventory-service/internal/category/handler"
	catRepoPkg "github.com/autoparts/inventory-service/internal/category/repository"
	catUCPkg "github.com/autoparts/inventory-service/internal/category/usecase"

	supHandlerPkg "github.com/autoparts/inventory-service/internal/supplier/handler"
	supRepoPkg "github.com/autoparts/inventory-service/internal/supplier/repository"
	supUCPkg "github.com/autoparts/inventory-service/internal/supplier/usecase"

	prodHandlerPkg "github.com/autoparts/inventory-service/internal/product/handler"
	prodRepoPkg "github.com/autoparts/inventory-service/internal/product/repository"
	prodUCPkg "github.com/autoparts/inventory-service/internal/product/usecase"

	ledgerHandlerPkg "github.com/autoparts/inventory-service/internal/ledger/handler"
	ledgerRepoPkg "github.com/autoparts/inventory-service/internal/ledger/repository"
	ledgerUCPkg "github.com/autoparts/inventory-service/internal/ledger/usecase"

	invHandlerPkg "github.com/autoparts/inventory-service/internal/inventory/handler"
	invRepoPkg "github.com/autoparts/inventory-service/internal/inventory/repository"
	invUCPkg "github.com/autoparts/inventory-service/internal/inventory/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Schema and seed data
	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Could not migrate database schema", zap.Error(err))
	}
	if err := postgres.Seed(ctx, db); err != nil {
		appLogger.Fatal("Could not seed database", zap.Error(err))
	}
	appLogger.Info("Database schema ready")

	// 5. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	supRepo := supRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	ledgerRepo := ledgerRepoPkg.NewPGRepository(db)
	invRepo := invRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	catUC := catUCPkg.NewCategoryUseCase(catRepo, appLogger)
	supUC := supUCPkg.NewSupplierUseCase(supRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)
	ledgerUC := ledgerUCPkg.NewLedgerUseCase(ledgerRepo, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, appLogger)

	// 7. Initialize Handlers and Router
	handlers := &server.Handlers{
		Category:  catHandlerPkg.NewCategoryHandler(catUC, appLogger),
		Supplier:  supHandlerPkg.NewSupplierHandler(supUC, appLogger),
		Product:   prodHandlerPkg.NewProductHandler(prodUC, appLogger),
		Ledger:    ledgerHandlerPkg.NewLedgerHandler(ledgerUC, appLogger),
		Inventory: invHandlerPkg.NewInventoryHandler(invUC, appLogger),
	}
	router := server.NewRouter(handlers, db, appLogger)

	// 8. Start HTTP Server
	srv := &http.Server{
		Addr:    cfg.Server.HTTPPort,
		Handler: router,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

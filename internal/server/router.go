package server

import (
	"net/http"

	categoryHandler "github.com/autoparts/inventory-service/internal/category/handler"
	inventoryHandler "github.com/autoparts/inventory-service/internal/inventory/handler"
	ledgerHandler "github.com/autoparts/inventory-service/internal/ledger/handler"
	productHandler "github.com/autoparts/inventory-service/internal/product/handler"
	supplierHandler "github.com/autoparts/inventory-service/internal/supplier/handler"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Handlers struct {
	Product   *productHandler.ProductHandler
	Category  *categoryHandler.CategoryHandler
	Supplier  *supplierHandler.SupplierHandler
	Ledger    *ledgerHandler.LedgerHandler
	Inventory *inventoryHandler.InventoryHandler
}

// NewRouter wires the REST surface. Endpoints are a thin mapping onto the
// ledger and query usecases; no business logic lives here.
func NewRouter(h *Handlers, db *sqlx.DB, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware(log))

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/products", h.Product.List)
		api.POST("/products", h.Product.Create)
		api.GET("/products/:id", h.Product.Get)
		api.PUT("/products/:id", h.Product.Update)
		api.DELETE("/products/:id", h.Product.Delete)

		api.GET("/stock-in", h.Ledger.ListStockIn)
		api.POST("/stock-in", h.Ledger.CreateStockIn)
		api.GET("/stock-out", h.Ledger.ListStockOut)
		api.POST("/stock-out", h.Ledger.CreateStockOut)

		api.GET("/categories", h.Category.List)
		api.POST("/categories", h.Category.Create)
		api.GET("/categories/:id", h.Category.Get)
		api.PUT("/categories/:id", h.Category.Update)
		api.DELETE("/categories/:id", h.Category.Delete)

		api.GET("/suppliers", h.Supplier.List)
		api.POST("/suppliers", h.Supplier.Create)
		api.GET("/suppliers/:id", h.Supplier.Get)
		api.PUT("/suppliers/:id", h.Supplier.Update)
		api.DELETE("/suppliers/:id", h.Supplier.Delete)

		api.GET("/inventory", h.Inventory.List)
		api.GET("/inventory/alerts", h.Inventory.Alerts)
		api.GET("/inventory/product/:id", h.Inventory.GetByProduct)
	}

	return router
}

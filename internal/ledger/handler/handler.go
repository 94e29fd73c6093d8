package handler

import (
	"net/http"

	"github.com/autoparts/inventory-service/internal/ledger"
	"github.com/autoparts/inventory-service/internal/ledger/dto"
	"github.com/autoparts/inventory-service/internal/server/respond"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LedgerHandler struct {
	uc     ledger.UseCase
	logger *zap.Logger
}

func NewLedgerHandler(uc ledger.UseCase, log *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		uc:     uc,
		logger: log,
	}
}

type stockInRequest struct {
	ProductID   int64   `json:"product_id" binding:"required"`
	SupplierID  *int64  `json:"supplier_id"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"gte=0"`
	BatchNumber string  `json:"batch_number"`
	Operator    string  `json:"operator"`
	Notes       string  `json:"notes"`
}

type stockOutRequest struct {
	ProductID    int64   `json:"product_id" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,gt=0"`
	SalePrice    float64 `json:"sale_price" binding:"gte=0"`
	CustomerName string  `json:"customer_name" binding:"required"`
	VehicleInfo  string  `json:"vehicle_info"`
	Operator     string  `json:"operator"`
	Notes        string  `json:"notes"`
}

func (h *LedgerHandler) CreateStockIn(c *gin.Context) {
	var req stockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	rec, err := h.uc.RecordStockIn(c.Request.Context(), &dto.StockInInput{
		ProductID:   req.ProductID,
		SupplierID:  req.SupplierID,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		BatchNumber: req.BatchNumber,
		Operator:    req.Operator,
		Notes:       req.Notes,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": rec.ID, "message": "stock in recorded"})
}

func (h *LedgerHandler) ListStockIn(c *gin.Context) {
	records, err := h.uc.ListStockIn(c.Request.Context())
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *LedgerHandler) CreateStockOut(c *gin.Context) {
	var req stockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	rec, err := h.uc.RecordStockOut(c.Request.Context(), &dto.StockOutInput{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		SalePrice:    req.SalePrice,
		CustomerName: req.CustomerName,
		VehicleInfo:  req.VehicleInfo,
		Operator:     req.Operator,
		Notes:        req.Notes,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": rec.ID, "message": "stock out recorded"})
}

func (h *LedgerHandler) ListStockOut(c *gin.Context) {
	records, err := h.uc.ListStockOut(c.Request.Context())
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

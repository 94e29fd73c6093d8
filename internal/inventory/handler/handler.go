package handler

import (
	"net/http"
	"strconv"

	"github.com/autoparts/inventory-service/internal/inventory"
	"github.com/autoparts/inventory-service/internal/model"
	"github.com/autoparts/inventory-service/internal/server/respond"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger *zap.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.uc.ListInventory(c.Request.Context())
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) Alerts(c *gin.Context) {
	items, err := h.uc.ListLowStockAlerts(c.Request.Context())
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) GetByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respond.Error(c, h.logger, model.NewValidationError("id", "must be an integer"))
		return
	}

	inv, err := h.uc.GetProductInventory(c.Request.Context(), productID)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

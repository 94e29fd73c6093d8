package handler

import (
	"net/http"
	"strconv"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/autoparts/inventory-service/internal/product"
	"github.com/autoparts/inventory-service/internal/product/dto"
	"github.com/autoparts/inventory-service/internal/server/respond"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewProductHandler(uc product.UseCase, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type productRequest struct {
	Name          string   `json:"name" binding:"required"`
	CategoryID    *int64   `json:"category_id"`
	PartNumber    string   `json:"part_number"`
	Brand         string   `json:"brand"`
	Model         string   `json:"model"`
	Specification string   `json:"specification"`
	Unit          string   `json:"unit"`
	PurchasePrice *float64 `json:"purchase_price" binding:"omitempty,gte=0"`
	SalePrice     *float64 `json:"sale_price" binding:"omitempty,gte=0"`
	MinStock      *int     `json:"min_stock"`
	MaxStock      *int     `json:"max_stock"`
	Description   string   `json:"description"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		PartNumber:    req.PartNumber,
		Brand:         req.Brand,
		Model:         req.Model,
		Specification: req.Specification,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		MinStock:      req.MinStock,
		MaxStock:      req.MaxStock,
		Description:   req.Description,
	})
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": p.ID, "message": "product created"})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.BindError(c, err)
		return
	}

	if _, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:            id,
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		PartNumber:    req.PartNumber,
		Brand:         req.Brand,
		Model:         req.Model,
		Specification: req.Specification,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		MinStock:      req.MinStock,
		MaxStock:      req.MaxStock,
		Description:   req.Description,
	}); err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		respond.Error(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, model.NewValidationError("id", "must be an integer")
	}
	return id, nil
}

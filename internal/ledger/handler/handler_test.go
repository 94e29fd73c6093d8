package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/autoparts/inventory-service/internal/ledger/dto"
	"github.com/autoparts/inventory-service/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubUseCase struct {
	stockInErr  error
	stockOutErr error
}

func (s *stubUseCase) RecordStockIn(_ context.Context, input *dto.StockInInput) (*model.StockIn, error) {
	if s.stockInErr != nil {
		return nil, s.stockInErr
	}
	return &model.StockIn{ID: 1, ProductID: input.ProductID, Quantity: input.Quantity}, nil
}

func (s *stubUseCase) RecordStockOut(_ context.Context, input *dto.StockOutInput) (*model.StockOut, error) {
	if s.stockOutErr != nil {
		return nil, s.stockOutErr
	}
	return &model.StockOut{ID: 2, ProductID: input.ProductID, Quantity: input.Quantity}, nil
}

func (s *stubUseCase) ListStockIn(_ context.Context) ([]model.StockInDetail, error) {
	return []model.StockInDetail{}, nil
}

func (s *stubUseCase) ListStockOut(_ context.Context) ([]model.StockOutDetail, error) {
	return []model.StockOutDetail{}, nil
}

func newTestRouter(uc *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLedgerHandler(uc, zap.NewNop())

	router := gin.New()
	router.POST("/api/stock-in", h.CreateStockIn)
	router.GET("/api/stock-in", h.ListStockIn)
	router.POST("/api/stock-out", h.CreateStockOut)
	router.GET("/api/stock-out", h.ListStockOut)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateStockInOK(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	w := doJSON(router, http.MethodPost, "/api/stock-in",
		`{"product_id": 1, "quantity": 10, "unit_price": 5.0}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, "stock in recorded", resp["message"])
}

func TestCreateStockInUnknownProduct(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		stockInErr: fmt.Errorf("product 42: %w", model.ErrNotFound),
	})

	w := doJSON(router, http.MethodPost, "/api/stock-in",
		`{"product_id": 42, "quantity": 1}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateStockInMalformedBody(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	w := doJSON(router, http.MethodPost, "/api/stock-in", `{"quantity": "ten"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStockOutInsufficientStock(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		stockOutErr: &model.InsufficientStockError{ProductID: 1, Requested: 5, Available: 3},
	})

	w := doJSON(router, http.MethodPost, "/api/stock-out",
		`{"product_id": 1, "quantity": 5, "sale_price": 8.0, "customer_name": "Garage A"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "insufficient stock", resp["error"])
	assert.Equal(t, float64(3), resp["available"])
}

func TestCreateStockOutMissingCustomer(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	w := doJSON(router, http.MethodPost, "/api/stock-out",
		`{"product_id": 1, "quantity": 5}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateStockOutValidationError(t *testing.T) {
	router := newTestRouter(&stubUseCase{
		stockOutErr: model.NewValidationError("customer_name", "must not be empty"),
	})

	w := doJSON(router, http.MethodPost, "/api/stock-out",
		`{"product_id": 1, "quantity": 5, "customer_name": "  "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListStockIn(t *testing.T) {
	router := newTestRouter(&stubUseCase{})

	w := doJSON(router, http.MethodGet, "/api/stock-in", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

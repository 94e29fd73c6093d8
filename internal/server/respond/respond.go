// Package respond maps service errors onto HTTP responses so every handler
// reports failures the same way.
package respond

import (
	"errors"
	"net/http"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error writes the JSON error response for err. Business-rule violations map
// to 4xx; anything else is treated as a store failure and logged.
func Error(c *gin.Context, log *zap.Logger, err error) {
	var validationErr *model.ValidationError
	var stockErr *model.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "insufficient stock",
			"available": stockErr.Available,
		})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// BindError reports a malformed or invalid request body.
func BindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

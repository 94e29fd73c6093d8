package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStockStatus(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		min, max int
		want     string
	}{
		{"below min", 2, 5, 50, StockStatusLow},
		{"at min", 5, 5, 50, StockStatusLow},
		{"zero stock", 0, 0, 50, StockStatusLow},
		{"just above min", 6, 5, 50, StockStatusNormal},
		{"just below max", 49, 5, 50, StockStatusNormal},
		{"at max", 50, 5, 50, StockStatusHigh},
		{"above max", 80, 5, 50, StockStatusHigh},
		{"low wins over misconfigured thresholds", 3, 5, 2, StockStatusLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &InventoryItem{
				CurrentStock: tt.current,
				MinStock:     tt.min,
				MaxStock:     tt.max,
			}
			assert.Equal(t, tt.want, item.ResolveStockStatus())
		})
	}
}

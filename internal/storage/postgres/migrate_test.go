package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedStockMatchesInitialLevels(t *testing.T) {
	// A fresh database starts with these stock levels, each backed by a
	// matching goods receipt so the ledger sums to the projection.
	wantLevels := map[int64]int{1: 50, 2: 30, 3: 10, 4: 25, 5: 5}

	levels := map[int64]int{}
	batches := map[string]bool{}
	for _, m := range seedStockIn {
		require.Positive(t, m.Quantity)
		require.Positive(t, m.UnitPrice)
		assert.False(t, batches[m.Batch], "duplicate batch %s", m.Batch)
		batches[m.Batch] = true
		levels[m.ProductID] += m.Quantity
	}

	assert.Equal(t, wantLevels, levels)
}

func TestSeedStockNotBelowMinimum(t *testing.T) {
	// Seeded stock sits above each product's min_stock threshold, so a
	// fresh deployment raises no low-stock alerts.
	minStock := map[int64]int{1: 10, 2: 5, 3: 5, 4: 10, 5: 2}

	levels := map[int64]int{}
	for _, m := range seedStockIn {
		levels[m.ProductID] += m.Quantity
	}
	for id, min := range minStock {
		assert.Greater(t, levels[id], min, "product %d", id)
	}
}

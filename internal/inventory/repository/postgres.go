package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

const inventoryJoin = `
    SELECT i.product_id,
           p.name AS product_name,
           COALESCE(p.part_number, '') AS part_number,
           COALESCE(p.brand, '') AS brand,
           COALESCE(p.model, '') AS model,
           p.min_stock,
           p.max_stock,
           i.current_stock,
           i.last_updated
    FROM inventory i
    JOIN products p ON p.id = i.product_id
`

func (r *PGRepository) FindAll(ctx context.Context) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	query := inventoryJoin + ` ORDER BY i.product_id`
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) FindLowStock(ctx context.Context) ([]model.InventoryItem, error) {
	items := []model.InventoryItem{}
	query := inventoryJoin + `
        WHERE i.current_stock <= p.min_stock
        ORDER BY i.current_stock ASC
    `
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) GetByProduct(ctx context.Context, productID int64) (*model.Inventory, error) {
	var inv model.Inventory
	query := `SELECT * FROM inventory WHERE product_id = $1`
	err := r.DB.GetContext(ctx, &inv, query, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

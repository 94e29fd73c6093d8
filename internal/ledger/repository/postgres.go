package repository

import (
	"context"
	"fmt"

	"github.com/autoparts/inventory-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) RecordIn(ctx context.Context, rec *model.StockIn) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, rec.ProductID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("product %d: %w", rec.ProductID, model.ErrNotFound)
	}

	if rec.SupplierID != nil {
		err = tx.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, *rec.SupplierID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("supplier %d: %w", *rec.SupplierID, model.ErrNotFound)
		}
	}

	query := `
        INSERT INTO stock_in (
            product_id, supplier_id, quantity, unit_price, total_amount,
            batch_number, in_date, operator, notes, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err = tx.QueryRowxContext(ctx, query,
		rec.ProductID, rec.SupplierID, rec.Quantity, rec.UnitPrice, rec.TotalAmount,
		rec.BatchNumber, rec.InDate, rec.Operator, rec.Notes, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
        INSERT INTO inventory (product_id, current_stock, last_updated)
        VALUES ($1, $2, $3)
        ON CONFLICT (product_id) DO UPDATE SET
            current_stock = inventory.current_stock + EXCLUDED.current_stock,
            last_updated = EXCLUDED.last_updated
    `, rec.ProductID, rec.Quantity, rec.InDate)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) RecordOut(ctx context.Context, rec *model.StockOut) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Conditional decrement: the row-level lock taken by UPDATE serializes
	// concurrent stock-outs on the same product, and the guard keeps
	// current_stock from ever going negative.
	res, err := tx.ExecContext(ctx, `
        UPDATE inventory
        SET current_stock = current_stock - $1, last_updated = $2
        WHERE product_id = $3 AND current_stock >= $1
    `, rec.Quantity, rec.OutDate, rec.ProductID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var available int
		err = tx.GetContext(ctx, &available, `
            SELECT COALESCE(
                (SELECT current_stock FROM inventory WHERE product_id = $1), 0)
        `, rec.ProductID)
		if err != nil {
			return err
		}
		return &model.InsufficientStockError{
			ProductID: rec.ProductID,
			Requested: rec.Quantity,
			Available: available,
		}
	}

	query := `
        INSERT INTO stock_out (
            product_id, quantity, sale_price, total_amount, out_date,
            customer_name, vehicle_info, operator, notes, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err = tx.QueryRowxContext(ctx, query,
		rec.ProductID, rec.Quantity, rec.SalePrice, rec.TotalAmount, rec.OutDate,
		rec.CustomerName, rec.VehicleInfo, rec.Operator, rec.Notes, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) ListStockIn(ctx context.Context) ([]model.StockInDetail, error) {
	records := []model.StockInDetail{}
	query := `
        SELECT s.*,
               COALESCE(p.name, 'unknown product') AS product_name,
               COALESCE(sup.name, 'unknown supplier') AS supplier_name
        FROM stock_in s
        LEFT JOIN products p ON p.id = s.product_id
        LEFT JOIN suppliers sup ON sup.id = s.supplier_id
        ORDER BY s.id
    `
	err := r.DB.SelectContext(ctx, &records, query)
	return records, err
}

func (r *PGRepository) ListStockOut(ctx context.Context) ([]model.StockOutDetail, error) {
	records := []model.StockOutDetail{}
	query := `
        SELECT s.*,
               COALESCE(p.name, 'unknown product') AS product_name
        FROM stock_out s
        LEFT JOIN products p ON p.id = s.product_id
        ORDER BY s.id
    `
	err := r.DB.SelectContext(ctx, &records, query)
	return records, err
}

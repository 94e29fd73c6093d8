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

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO products (
            name, category_id, part_number, brand, model, specification,
            unit, purchase_price, sale_price, min_stock, max_stock,
            description, created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id
    `
	err = tx.QueryRowxContext(ctx, query,
		p.Name, p.CategoryID, p.PartNumber, p.Brand, p.Model, p.Specification,
		p.Unit, p.PurchasePrice, p.SalePrice, p.MinStock, p.MaxStock,
		p.Description, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return err
	}

	// Every product carries an inventory projection row from creation.
	_, err = tx.ExecContext(ctx, `
        INSERT INTO inventory (product_id, current_stock, last_updated)
        VALUES ($1, 0, $2)
        ON CONFLICT (product_id) DO NOTHING
    `, p.ID, p.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.ProductListItem, error) {
	items := []model.ProductListItem{}
	query := `
        SELECT p.*,
               COALESCE(c.name, 'uncategorized') AS category_name,
               COALESCE(i.current_stock, 0) AS current_stock
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        LEFT JOIN inventory i ON i.product_id = p.id
        ORDER BY p.id
    `
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	query := `
        UPDATE products
        SET name = :name, category_id = :category_id, part_number = :part_number,
            brand = :brand, model = :model, specification = :specification,
            unit = :unit, purchase_price = :purchase_price, sale_price = :sale_price,
            min_stock = :min_stock, max_stock = :max_stock,
            description = :description, updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PGRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *PGRepository) IsPartNumberUnique(ctx context.Context, partNumber string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM products WHERE part_number = $1 AND id <> $2)`
	err := r.DB.GetContext(ctx, &exists, query, partNumber, excludeID)
	return !exists, err
}

func (r *PGRepository) CategoryExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`
	err := r.DB.GetContext(ctx, &exists, query, id)
	return exists, err
}

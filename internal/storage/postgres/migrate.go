package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Schema statements are idempotent so Migrate can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS suppliers (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		contact_person VARCHAR(100),
		phone VARCHAR(20),
		address TEXT,
		email VARCHAR(100),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
		part_number VARCHAR(100) UNIQUE,
		brand VARCHAR(100),
		model VARCHAR(100),
		specification TEXT,
		unit VARCHAR(20) NOT NULL DEFAULT 'pcs',
		purchase_price NUMERIC(10,2),
		sale_price NUMERIC(10,2),
		min_stock INT NOT NULL DEFAULT 0,
		max_stock INT NOT NULL DEFAULT 100,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_in (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		supplier_id BIGINT REFERENCES suppliers(id) ON DELETE SET NULL,
		quantity INT NOT NULL CHECK (quantity > 0),
		unit_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		batch_number VARCHAR(100),
		in_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		operator VARCHAR(100) NOT NULL DEFAULT 'unknown',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS stock_out (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		quantity INT NOT NULL CHECK (quantity > 0),
		sale_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		total_amount NUMERIC(10,2) NOT NULL DEFAULT 0,
		out_date TIMESTAMPTZ NOT NULL DEFAULT now(),
		customer_name VARCHAR(255) NOT NULL,
		vehicle_info TEXT,
		operator VARCHAR(100) NOT NULL DEFAULT 'unknown',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory (
		product_id BIGINT PRIMARY KEY REFERENCES products(id) ON DELETE CASCADE,
		current_stock INT NOT NULL DEFAULT 0 CHECK (current_stock >= 0),
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_in_product ON stock_in(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_out_product ON stock_out(product_id)`,
}

var seed = []string{
	`INSERT INTO categories (name, description) VALUES
		('Engine Parts', 'Engine related parts'),
		('Brake System', 'Brake pads, discs and related'),
		('Electrical System', 'Batteries, alternators and related'),
		('Filters', 'Oil filters, air filters and related')`,
	`INSERT INTO suppliers (name, contact_person, phone) VALUES
		('Shanghai Auto Parts Co.', 'Manager Zhang', '13800138000'),
		('Beijing Auto Components', 'Director Li', '13900139000')`,
	`INSERT INTO products (name, category_id, part_number, brand, model, unit, purchase_price, sale_price, min_stock, max_stock) VALUES
		('Oil Filter', 4, 'FILTER-001', 'Bosch', 'BOSCH-001', 'pcs', 25.00, 35.00, 10, 50),
		('Air Filter', 4, 'FILTER-002', 'Mann', 'MANN-001', 'pcs', 35.00, 50.00, 5, 30),
		('Brake Pads', 2, 'BRAKE-001', 'Ferodo', 'FERODO-001', 'set', 120.00, 180.00, 5, 20),
		('Spark Plug', 1, 'SPARK-001', 'NGK', 'NGK-001', 'pcs', 45.00, 65.00, 10, 40),
		('Car Battery', 3, 'BATTERY-001', 'Varta', 'VARTA-001', 'pcs', 350.00, 480.00, 2, 10)
	ON CONFLICT (part_number) DO NOTHING`,
	`INSERT INTO inventory (product_id, current_stock)
		SELECT id, 0 FROM products
	ON CONFLICT (product_id) DO NOTHING`,
}

type seedMovement struct {
	ProductID  int64
	SupplierID int64
	Quantity   int
	UnitPrice  float64
	Batch      string
	Operator   string
	Notes      string
}

// Initial goods receipts. Each product's starting stock comes from these
// ledger rows, keeping current_stock equal to the movement sum from day one.
var seedStockIn = []seedMovement{
	{1, 1, 50, 25.00, "BATCH-2024-001", "Zhang San", "routine restock"},
	{2, 2, 30, 35.00, "BATCH-2024-002", "Li Si", "new product intake"},
	{3, 1, 10, 120.00, "BATCH-2024-003", "Wang Wu", "urgent purchase"},
	{4, 2, 25, 45.00, "BATCH-2024-004", "Zhao Liu", "promotion stock"},
	{5, 1, 5, 350.00, "BATCH-2024-005", "Qian Qi", "bulky item intake"},
}

// Migrate creates the schema if missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Seed loads the sample reference data into a fresh database. A second run
// is a no-op.
func Seed(ctx context.Context, db *sqlx.DB) error {
	var seeded bool
	err := db.GetContext(ctx, &seeded, `SELECT EXISTS (SELECT 1 FROM categories)`)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}
	for _, stmt := range seed {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, m := range seedStockIn {
		_, err := db.ExecContext(ctx, `
			INSERT INTO stock_in (product_id, supplier_id, quantity, unit_price, total_amount, batch_number, operator, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, m.ProductID, m.SupplierID, m.Quantity, m.UnitPrice,
			float64(m.Quantity)*m.UnitPrice, m.Batch, m.Operator, m.Notes)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, `
			UPDATE inventory SET current_stock = current_stock + $1, last_updated = now()
			WHERE product_id = $2
		`, m.Quantity, m.ProductID)
		if err != nil {
			return err
		}
	}
	return nil
}

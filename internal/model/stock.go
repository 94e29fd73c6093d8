package model

import "time"

// StockIn is an immutable ledger row recording a goods receipt.
type StockIn struct {
	ID          int64     `db:"id" json:"id"`
	ProductID   int64     `db:"product_id" json:"product_id"`
	SupplierID  *int64    `db:"supplier_id" json:"supplier_id"` // Nullable
	Quantity    int       `db:"quantity" json:"quantity"`
	UnitPrice   float64   `db:"unit_price" json:"unit_price"`
	TotalAmount float64   `db:"total_amount" json:"total_amount"`
	BatchNumber *string   `db:"batch_number" json:"batch_number"`
	InDate      time.Time `db:"in_date" json:"in_date"`
	Operator    string    `db:"operator" json:"operator"`
	Notes       *string   `db:"notes" json:"notes"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// StockOut is an immutable ledger row recording a goods issue.
type StockOut struct {
	ID           int64     `db:"id" json:"id"`
	ProductID    int64     `db:"product_id" json:"product_id"`
	Quantity     int       `db:"quantity" json:"quantity"`
	SalePrice    float64   `db:"sale_price" json:"sale_price"`
	TotalAmount  float64   `db:"total_amount" json:"total_amount"`
	OutDate      time.Time `db:"out_date" json:"out_date"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	VehicleInfo  *string   `db:"vehicle_info" json:"vehicle_info"`
	Operator     string    `db:"operator" json:"operator"`
	Notes        *string   `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// StockInDetail carries joined reference names for listings.
type StockInDetail struct {
	StockIn
	ProductName  string `db:"product_name" json:"product_name"`
	SupplierName string `db:"supplier_name" json:"supplier_name"`
}

type StockOutDetail struct {
	StockOut
	ProductName string `db:"product_name" json:"product_name"`
}

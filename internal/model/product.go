package model

type Product struct {
	BaseModel
	Name          string   `db:"name" json:"name"`
	CategoryID    *int64   `db:"category_id" json:"category_id"` // Nullable
	PartNumber    *string  `db:"part_number" json:"part_number"` // Unique
	Brand         *string  `db:"brand" json:"brand"`
	Model         *string  `db:"model" json:"model"`
	Specification *string  `db:"specification" json:"specification"`
	Unit          string   `db:"unit" json:"unit"`
	PurchasePrice *float64 `db:"purchase_price" json:"purchase_price"`
	SalePrice     *float64 `db:"sale_price" json:"sale_price"`
	MinStock      int      `db:"min_stock" json:"min_stock"`
	MaxStock      int      `db:"max_stock" json:"max_stock"`
	Description   *string  `db:"description" json:"description"`
}

// ProductListItem is a product row enriched with joined data for listings.
type ProductListItem struct {
	Product
	CategoryName string `db:"category_name" json:"category_name"`
	CurrentStock int    `db:"current_stock" json:"current_stock"`
}

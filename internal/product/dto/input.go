package dto

type CreateProductInput struct {
	Name          string
	CategoryID    *int64
	PartNumber    string
	Brand         string
	Model         string
	Specification string
	Unit          string // defaults to "pcs" when empty
	PurchasePrice *float64
	SalePrice     *float64
	MinStock      *int // defaults to 0 when nil
	MaxStock      *int // defaults to 100 when nil
	Description   string
}

type UpdateProductInput struct {
	ID            int64
	Name          string
	CategoryID    *int64
	PartNumber    string
	Brand         string
	Model         string
	Specification string
	Unit          string
	PurchasePrice *float64
	SalePrice     *float64
	MinStock      *int
	MaxStock      *int
	Description   string
}

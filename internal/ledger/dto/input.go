package dto

type StockInInput struct {
	ProductID   int64
	SupplierID  *int64
	Quantity    int
	UnitPrice   float64
	BatchNumber string // generated when empty
	Operator    string
	Notes       string
}

type StockOutInput struct {
	ProductID    int64
	Quantity     int
	SalePrice    float64
	CustomerName string
	VehicleInfo  string
	Operator     string
	Notes        string
}

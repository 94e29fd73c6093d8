package dto

type CreateSupplierInput struct {
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	Email         string
}

type UpdateSupplierInput struct {
	ID            int64
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	Email         string
}

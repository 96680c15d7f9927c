package dto

type SupplierFilters struct {
	Skip  int
	Limit int
}

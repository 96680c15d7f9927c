package dto

type CreateProductInput struct {
	Name          string  `json:"name" validate:"required,max=255"`
	SKU           string  `json:"sku" validate:"required,max=64"`
	Description   *string `json:"description"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ReorderPoint  int     `json:"reorder_point" validate:"gte=0"`
	Category      string  `json:"category" validate:"required,max=100"`
	SupplierID    *string `json:"supplier_id" validate:"omitempty,uuid"`
}

package model

type Product struct {
	BaseModel
	Name          string  `db:"name" json:"name"`
	SKU           string  `db:"sku" json:"sku"`
	Description   *string `db:"description" json:"description"` // Nullable
	UnitPrice     float64 `db:"unit_price" json:"unit_price"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
	ReorderPoint  int     `db:"reorder_point" json:"reorder_point"`
	Category      string  `db:"category" json:"category"`
	SupplierID    *string `db:"supplier_id" json:"supplier_id"` // Nullable
}

// IsLowStock reports whether stock has reached the reorder point.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.ReorderPoint
}

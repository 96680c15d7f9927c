// Package analytics derives inventory, order and product-performance figures
// from snapshots of the inventory and order stores.
//
// Every aggregation is a pure function of its input: it never mutates the
// slices it is given, and the same snapshot always yields the same result.
// The two stores share no foreign key; order items reach products only
// through their SKU, and that lookup is always optional.
package analytics

type InventoryAnalytics struct {
	TotalProducts int `json:"total_products"`
	// TotalValue is the sum of unit prices, not price × stock. See DESIGN.md.
	TotalValue             float64            `json:"total_value"`
	LowStockItems          int                `json:"low_stock_items"`
	CategoriesDistribution map[string]int     `json:"categories_distribution"`
	AvgPriceByCategory     map[string]float64 `json:"avg_price_by_category"`
}

type OrderAnalytics struct {
	TotalOrders        int                  `json:"total_orders"`
	TotalRevenue       float64              `json:"total_revenue"`
	AvgOrderValue      float64              `json:"avg_order_value"`
	OrdersByStatus     map[string]int       `json:"orders_by_status"`
	TopSellingProducts []ProductPerformance `json:"top_selling_products"`
}

// ProductPerformance is the per-SKU sales aggregate. ProductName and Category are
// only set in the joined view, where the SKU resolved to a current product.
type ProductPerformance struct {
	ProductSKU  string  `json:"product_sku"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
	ProductName string  `json:"product_name,omitempty"`
	Category    string  `json:"category,omitempty"`
}

type CustomerAnalytics struct {
	TotalCustomers       int     `json:"total_customers"`
	AvgOrdersPerCustomer float64 `json:"avg_orders_per_customer"`
	AvgLifetimeValue     float64 `json:"avg_lifetime_value"`
}

type DailyRevenuePoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD, UTC
	Revenue float64 `json:"revenue"`
}

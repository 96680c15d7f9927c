package analytics

import "github.com/fekuna/omnipos-supplychain-service/internal/model"

func AggregateInventory(products []model.Product) InventoryAnalytics {
	out := InventoryAnalytics{
		TotalProducts:          len(products),
		CategoriesDistribution: make(map[string]int),
		AvgPriceByCategory:     make(map[string]float64),
	}

	priceSums := make(map[string]float64)
	for _, p := range products {
		out.TotalValue += p.UnitPrice
		if p.IsLowStock() {
			out.LowStockItems++
		}
		// Category labels are compared verbatim; "Books" and "books" are distinct.
		out.CategoriesDistribution[p.Category]++
		priceSums[p.Category] += p.UnitPrice
	}

	for category, sum := range priceSums {
		out.AvgPriceByCategory[category] = sum / float64(out.CategoriesDistribution[category])
	}
	return out
}

// MeanUnitPrice is the plain average of unit prices, 0 for no products.
func MeanUnitPrice(products []model.Product) float64 {
	if len(products) == 0 {
		return 0
	}
	var sum float64
	for _, p := range products {
		sum += p.UnitPrice
	}
	return sum / float64(len(products))
}

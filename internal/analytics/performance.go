package analytics

import (
	"sort"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
)

// DefaultTopN is the size of the top-selling list embedded in OrderAnalytics.
const DefaultTopN = 10

// ProductResolver looks a product up by SKU. The bool is false when the SKU is
// unknown to the inventory store, which is normal: products may have been
// removed, or the SKU never existed.
type ProductResolver interface {
	Resolve(sku string) (model.Product, bool)
}

// ProductIndex is a map-backed ProductResolver.
type ProductIndex map[string]model.Product

func (idx ProductIndex) Resolve(sku string) (model.Product, bool) {
	p, ok := idx[sku]
	return p, ok
}

func IndexBySKU(products []model.Product) ProductIndex {
	idx := make(ProductIndex, len(products))
	for _, p := range products {
		idx[p.SKU] = p
	}
	return idx
}

// SalesBySKU groups items by SKU in first-seen order, summing quantity and total
// price. Every SKU is kept, resolvable or not.
func SalesBySKU(items []model.OrderItem) []ProductPerformance {
	pos := make(map[string]int)
	out := []ProductPerformance{}
	for _, it := range items {
		i, ok := pos[it.ProductSKU]
		if !ok {
			i = len(out)
			pos[it.ProductSKU] = i
			out = append(out, ProductPerformance{ProductSKU: it.ProductSKU})
		}
		out[i].Quantity += it.Quantity
		out[i].TotalPrice += it.TotalPrice
	}
	return out
}

// TopSellingProducts ranks SKUs by total quantity sold, descending. Ties keep
// first-seen order.
//
// With a nil resolver the result is the raw per-SKU view. With a resolver it is
// the joined view: SKUs that do not resolve are dropped before ranking and
// resolved entries carry the product name and category.
func TopSellingProducts(items []model.OrderItem, limit int, resolver ProductResolver) ([]ProductPerformance, error) {
	return rank(items, limit, resolver, func(a, b ProductPerformance) bool {
		return a.Quantity > b.Quantity
	})
}

// TopGrossingProducts is TopSellingProducts ranked by revenue instead of quantity.
func TopGrossingProducts(items []model.OrderItem, limit int, resolver ProductResolver) ([]ProductPerformance, error) {
	return rank(items, limit, resolver, func(a, b ProductPerformance) bool {
		return a.TotalPrice > b.TotalPrice
	})
}

// UnresolvedSKUs lists, in first-seen order, the SKUs of items the resolver
// cannot find.
func UnresolvedSKUs(items []model.OrderItem, resolver ProductResolver) []string {
	out := []string{}
	if resolver == nil {
		return out
	}
	seen := make(map[string]struct{})
	for _, it := range items {
		if _, ok := seen[it.ProductSKU]; ok {
			continue
		}
		seen[it.ProductSKU] = struct{}{}
		if _, ok := resolver.Resolve(it.ProductSKU); !ok {
			out = append(out, it.ProductSKU)
		}
	}
	return out
}

func rank(items []model.OrderItem, limit int, resolver ProductResolver, less func(a, b ProductPerformance) bool) ([]ProductPerformance, error) {
	if limit < 0 {
		return nil, apperr.InvalidInput("limit must not be negative, got %d", limit)
	}

	entries := SalesBySKU(items)
	if resolver != nil {
		entries = join(entries, resolver)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func join(entries []ProductPerformance, resolver ProductResolver) []ProductPerformance {
	joined := make([]ProductPerformance, 0, len(entries))
	for _, e := range entries {
		p, ok := resolver.Resolve(e.ProductSKU)
		if !ok {
			continue
		}
		e.ProductName = p.Name
		e.Category = p.Category
		joined = append(joined, e)
	}
	return joined
}

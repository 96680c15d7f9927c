package product

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetProductBySKU(ctx context.Context, sku string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	ListLowStock(ctx context.Context, skip, limit int) ([]model.Product, int, error)

	// PricesBySKU returns the current unit price of every SKU that exists.
	PricesBySKU(ctx context.Context, skus []string) (map[string]float64, error)
}

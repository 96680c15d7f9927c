package product

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/product/dto"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindBySKUs(ctx context.Context, skus []string) ([]model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// FetchAll loads the whole table; analytics read it inside a snapshot.
	FetchAll(ctx context.Context) ([]model.Product, error)

	IsSKUUnique(ctx context.Context, sku string) (bool, error)
}

package order

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/order/dto"
)

type Repository interface {
	// Create inserts the order and all of its items atomically.
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context, filters *dto.OrderFilters) ([]model.Order, int, error)
	FindItemsByOrderIDs(ctx context.Context, orderIDs []string) ([]model.OrderItem, error)

	FetchAll(ctx context.Context) ([]model.Order, error)
	FetchAllItems(ctx context.Context) ([]model.OrderItem, error)
}

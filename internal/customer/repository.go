package customer

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindAll(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error)

	IsEmailUnique(ctx context.Context, email string) (bool, error)
}

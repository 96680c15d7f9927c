package customer

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
)

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error)
}

package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type customerUseCase struct {
	repo   customer.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	unique, err := uc.repo.IsEmailUnique(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperr.Conflict("customer with email %q already exists", input.Email)
	}

	c := &model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: time.Now().UTC()},
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.logger.Debug("customer created", zap.String("customer_id", c.ID))
	return c, nil
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound("customer %s not found", id)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context, filters *dto.CustomerFilters) ([]model.Customer, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) CreateSupplier(ctx context.Context, input *dto.CreateSupplierInput) (*model.Supplier, error) {
	unique, err := uc.repo.IsEmailUnique(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, apperr.Conflict("supplier with email %q already exists", input.Email)
	}

	s := &model.Supplier{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: time.Now().UTC()},
		Name:          input.Name,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.logger.Debug("supplier created", zap.String("supplier_id", s.ID))
	return s, nil
}

func (uc *supplierUseCase) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperr.NotFound("supplier %s not found", id)
	}
	return s, nil
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context, filters *dto.SupplierFilters) ([]model.Supplier, int, error) {
	return uc.repo.FindAll(ctx, filters)
}

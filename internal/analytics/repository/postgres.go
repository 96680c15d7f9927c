package repository

import (
	"context"

	"github.com/fekuna/omnipos-supplychain-service/internal/analytics/dto"
	orderrepo "github.com/fekuna/omnipos-supplychain-service/internal/order/repository"
	productrepo "github.com/fekuna/omnipos-supplychain-service/internal/product/repository"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	InventoryDB *sqlx.DB
	OrderDB     *sqlx.DB
}

func NewPGRepository(inventoryDB, orderDB *sqlx.DB) *PGRepository {
	return &PGRepository{InventoryDB: inventoryDB, OrderDB: orderDB}
}

func (r *PGRepository) InventorySnapshot(ctx context.Context) (*dto.InventorySnapshot, error) {
	snap := &dto.InventorySnapshot{}
	err := postgres.ReadSnapshot(ctx, r.InventoryDB, func(q postgres.DBTX) error {
		products, err := productrepo.NewPGRepository(q).FetchAll(ctx)
		if err != nil {
			return err
		}
		snap.Products = products
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (r *PGRepository) OrderSnapshot(ctx context.Context) (*dto.OrderSnapshot, error) {
	snap := &dto.OrderSnapshot{}
	err := postgres.ReadSnapshot(ctx, r.OrderDB, func(q postgres.DBTX) error {
		repo := orderrepo.NewPGRepository(q)

		orders, err := repo.FetchAll(ctx)
		if err != nil {
			return err
		}
		items, err := repo.FetchAllItems(ctx)
		if err != nil {
			return err
		}
		snap.Orders, snap.Items = orders, items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
)

// Tables in delete order; children come before the rows they reference.
var (
	orderTables     = []string{"order_items", "orders", "customers"}
	inventoryTables = []string{"products", "suppliers"}
)

type PGRepository struct {
	InventoryDB postgres.DBTX
	OrderDB     postgres.DBTX
}

func NewPGRepository(inventoryDB, orderDB postgres.DBTX) *PGRepository {
	return &PGRepository{InventoryDB: inventoryDB, OrderDB: orderDB}
}

func (r *PGRepository) ClearOrders(ctx context.Context) (map[string]int64, error) {
	return deleteAll(ctx, r.OrderDB, orderTables)
}

func (r *PGRepository) ClearInventory(ctx context.Context) (map[string]int64, error) {
	return deleteAll(ctx, r.InventoryDB, inventoryTables)
}

func deleteAll(ctx context.Context, db postgres.DBTX, tables []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(tables))
	err := postgres.InTx(ctx, db, func(tx postgres.DBTX) error {
		for _, table := range tables {
			res, err := tx.ExecContext(ctx, "DELETE FROM "+table)
			if err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
			counts[table] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

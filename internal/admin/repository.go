package admin

import "context"

// Repository clears both stores. Each method returns rows deleted per table.
type Repository interface {
	ClearOrders(ctx context.Context) (map[string]int64, error)
	ClearInventory(ctx context.Context) (map[string]int64, error)
}

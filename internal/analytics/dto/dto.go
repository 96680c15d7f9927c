package dto

import "github.com/fekuna/omnipos-supplychain-service/internal/model"

// InventorySnapshot is every product as seen by one read-only transaction.
type InventorySnapshot struct {
	Products []model.Product
}

// OrderSnapshot is every order and order item as seen by one read-only
// transaction, so item totals always agree with their orders.
type OrderSnapshot struct {
	Orders []model.Order
	Items  []model.OrderItem
}

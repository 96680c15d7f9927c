package dto

import "github.com/fekuna/omnipos-supplychain-service/internal/model"

type OrderFilters struct {
	CustomerID string
	Status     model.OrderStatus
	WithItems  bool
	Skip       int
	Limit      int
}

// OrderCreatedEvent is the payload published after an order commits.
type OrderCreatedEvent struct {
	OrderID     string             `json:"order_id"`
	CustomerID  string             `json:"customer_id"`
	Status      model.OrderStatus  `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	Items       []OrderCreatedItem `json:"items"`
}

type OrderCreatedItem struct {
	ProductSKU string  `json:"product_sku"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

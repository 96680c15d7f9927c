package dto

import (
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/model"
)

type CreateOrderInput struct {
	CustomerID      string                 `json:"customer_id" validate:"required,uuid"`
	Status          model.OrderStatus      `json:"status" validate:"omitempty,oneof=pending processing shipped delivered cancelled"`
	OrderDate       *time.Time             `json:"order_date"`
	ShippingAddress string                 `json:"shipping_address" validate:"required,max=500"`
	Items           []CreateOrderItemInput `json:"items" validate:"required,min=1,dive"`
}

type CreateOrderItemInput struct {
	ProductSKU string   `json:"product_sku" validate:"required,max=64"`
	Quantity   int      `json:"quantity" validate:"gt=0"`
	UnitPrice  *float64 `json:"unit_price" validate:"omitempty,gte=0"` // Resolved from the product when omitted
}

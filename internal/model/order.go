package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if s == st {
			return true
		}
	}
	return false
}

type Order struct {
	BaseModel
	CustomerID      string      `db:"customer_id" json:"customer_id"`
	Status          OrderStatus `db:"status" json:"status"`
	OrderDate       time.Time   `db:"order_date" json:"order_date"`
	TotalAmount     float64     `db:"total_amount" json:"total_amount"`
	ShippingAddress string      `db:"shipping_address" json:"shipping_address"`
	Items           []OrderItem `db:"-" json:"items,omitempty"` // Loaded separately
}

// OrderItem references a product by SKU only; the product lives in the inventory store.
type OrderItem struct {
	BaseModel
	OrderID    string  `db:"order_id" json:"order_id"`
	LineNo     int     `db:"line_no" json:"line_no"`
	ProductSKU string  `db:"product_sku" json:"product_sku"`
	Quantity   int     `db:"quantity" json:"quantity"`
	UnitPrice  float64 `db:"unit_price" json:"unit_price"` // Price at order time
	TotalPrice float64 `db:"total_price" json:"total_price"`
}

// LineTotal computes quantity × unit price without float drift.
func LineTotal(quantity int, unitPrice float64) decimal.Decimal {
	return decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity)))
}

// PriceItems fills TotalPrice on every item and TotalAmount on the order so that
// the stored total equals the sum of its line totals.
func (o *Order) PriceItems() {
	total := decimal.Zero
	for i := range o.Items {
		line := LineTotal(o.Items[i].Quantity, o.Items[i].UnitPrice)
		o.Items[i].TotalPrice = line.InexactFloat64()
		total = total.Add(line)
	}
	o.TotalAmount = total.InexactFloat64()
}

package analytics

import (
	"context"
	"time"
)

type UseCase interface {
	Inventory(ctx context.Context) (*InventoryAnalytics, error)
	Orders(ctx context.Context) (*OrderAnalytics, error)
	TopProducts(ctx context.Context, limit int, joined bool) (*TopProducts, error)
	Customers(ctx context.Context) (*CustomerAnalytics, error)
	DailyRevenue(ctx context.Context) ([]DailyRevenuePoint, error)

	// Report computes every figure the analyze command prints.
	Report(ctx context.Context) (*Report, error)
}

type TopProducts struct {
	Joined bool                 `json:"joined"`
	Items  []ProductPerformance `json:"items"`
	// UnresolvedSKUs is only filled in the joined view.
	UnresolvedSKUs []string `json:"unresolved_skus,omitempty"`
}

type Report struct {
	GeneratedAt    time.Time            `json:"generated_at"`
	Inventory      InventoryAnalytics   `json:"inventory"`
	MeanUnitPrice  float64              `json:"mean_unit_price"`
	Orders         OrderAnalytics       `json:"orders"`
	Customers      CustomerAnalytics    `json:"customers"`
	TopByRevenue   []ProductPerformance `json:"top_by_revenue"`
	UnresolvedSKUs []string             `json:"unresolved_skus"`
}

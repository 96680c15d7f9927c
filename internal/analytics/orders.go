package analytics

import (
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/model"
)

// AggregateOrders summarises orders from their stored total_amount. Item totals
// are not recomputed. TopSellingProducts is left empty for the caller to fill
// from the order items.
func AggregateOrders(orders []model.Order) OrderAnalytics {
	out := OrderAnalytics{
		TotalOrders:        len(orders),
		OrdersByStatus:     make(map[string]int),
		TopSellingProducts: []ProductPerformance{},
	}

	for _, o := range orders {
		out.TotalRevenue += o.TotalAmount
		out.OrdersByStatus[string(o.Status)]++
	}

	if out.TotalOrders > 0 {
		out.AvgOrderValue = out.TotalRevenue / float64(out.TotalOrders)
	}
	return out
}

// AggregateCustomers describes ordering customers. Customers without any order
// are not counted.
func AggregateCustomers(orders []model.Order) CustomerAnalytics {
	seen := make(map[string]struct{})
	var revenue float64
	for _, o := range orders {
		seen[o.CustomerID] = struct{}{}
		revenue += o.TotalAmount
	}

	out := CustomerAnalytics{TotalCustomers: len(seen)}
	if out.TotalCustomers > 0 {
		n := float64(out.TotalCustomers)
		out.AvgOrdersPerCustomer = float64(len(orders)) / n
		out.AvgLifetimeValue = revenue / n
	}
	return out
}

// DailyRevenue sums total_amount per UTC day, from the first order day to the
// last. Days without orders are present with zero revenue.
func DailyRevenue(orders []model.Order) []DailyRevenuePoint {
	if len(orders) == 0 {
		return []DailyRevenuePoint{}
	}

	byDay := make(map[time.Time]float64)
	first, last := day(orders[0].OrderDate), day(orders[0].OrderDate)
	for _, o := range orders {
		d := day(o.OrderDate)
		byDay[d] += o.TotalAmount
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	points := make([]DailyRevenuePoint, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		points = append(points, DailyRevenuePoint{Date: d.Format(time.DateOnly), Revenue: byDay[d]})
	}
	return points
}

func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

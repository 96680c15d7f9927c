package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fekuna/omnipos-supplychain-service/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *analytics.Report {
	return &analytics.Report{
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Inventory: analytics.InventoryAnalytics{
			TotalProducts:          3,
			TotalValue:             1500.5,
			LowStockItems:          1,
			CategoriesDistribution: map[string]int{"Tools": 1, "Books": 2},
			AvgPriceByCategory:     map[string]float64{"Tools": 900, "Books": 300.25},
		},
		MeanUnitPrice: 500.17,
		Orders: analytics.OrderAnalytics{
			TotalOrders:    3,
			TotalRevenue:   12345.5,
			AvgOrderValue:  4115.17,
			OrdersByStatus: map[string]int{"shipped": 1, "pending": 2},
		},
		Customers: analytics.CustomerAnalytics{TotalCustomers: 2, AvgOrdersPerCustomer: 1.5, AvgLifetimeValue: 6172.75},
		TopByRevenue: []analytics.ProductPerformance{
			{ProductSKU: "4006381333931", ProductName: "Drill", Category: "Tools", Quantity: 4, TotalPrice: 3600},
		},
		UnresolvedSKUs: []string{"GHOST"},
	}
}

func TestPrintSections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Print(sampleReport()))
	out := buf.String()

	for _, want := range []string{
		"Report generated at 2026-01-02 03:04:05 UTC",
		"=== Inventory Analysis ===",
		"Total number of products: 3",
		"Average product price: $500.17",
		"Products with low stock: 1",
		"=== Order Analysis ===",
		"Total revenue: $12,345.50",
		"Top 1 Products by Revenue:",
		"SKUs sold but missing from inventory: 1",
		"=== Customer Analysis ===",
		"Average orders per customer: 1.50",
	} {
		assert.Contains(t, out, want)
	}

	assert.Less(t, strings.Index(out, "Books"), strings.Index(out, "Tools"), "larger category first")
	assert.Less(t, strings.Index(out, "pending"), strings.Index(out, "shipped"))
}

func TestPrintEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf).Print(&analytics.Report{}))
	assert.Contains(t, buf.String(), "Total number of orders: 0")
	assert.NotContains(t, buf.String(), "missing from inventory")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrintPropagatesWriteError(t *testing.T) {
	assert.Error(t, NewPrinter(failingWriter{}).Print(sampleReport()))
}

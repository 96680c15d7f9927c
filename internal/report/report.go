// Package report renders the analysis report printed by the analyze command.
package report

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fekuna/omnipos-supplychain-service/internal/analytics"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Printer struct {
	w io.Writer
	p *message.Printer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

// Print writes the inventory, order and customer sections of r.
func (pr *Printer) Print(r *analytics.Report) error {
	sections := []func(*analytics.Report) error{
		pr.inventory,
		pr.orders,
		pr.customers,
	}
	if _, err := pr.p.Fprintf(pr.w, "Report generated at %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST")); err != nil {
		return err
	}
	for _, section := range sections {
		if err := section(r); err != nil {
			return err
		}
	}
	return nil
}

func (pr *Printer) inventory(r *analytics.Report) error {
	inv := r.Inventory
	pr.p.Fprintf(pr.w, "\n=== Inventory Analysis ===\n\nProduct Statistics:\n")
	pr.p.Fprintf(pr.w, "Total number of products: %d\n", inv.TotalProducts)
	pr.p.Fprintf(pr.w, "Total inventory value: $%.2f\n", inv.TotalValue)
	pr.p.Fprintf(pr.w, "Average product price: $%.2f\n", r.MeanUnitPrice)

	pr.p.Fprintf(pr.w, "\nCategory Distribution:\n")
	tw := tabwriter.NewWriter(pr.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tPRODUCTS\tAVG PRICE")
	for _, c := range byCount(inv.CategoriesDistribution) {
		pr.p.Fprintf(tw, "%s\t%d\t$%.2f\n", c.name, c.count, inv.AvgPriceByCategory[c.name])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := pr.p.Fprintf(pr.w, "\nStock Level Analysis:\nProducts with low stock: %d\n", inv.LowStockItems)
	return err
}

func (pr *Printer) orders(r *analytics.Report) error {
	ord := r.Orders
	pr.p.Fprintf(pr.w, "\n=== Order Analysis ===\n\nOrder Statistics:\n")
	pr.p.Fprintf(pr.w, "Total number of orders: %d\n", ord.TotalOrders)
	pr.p.Fprintf(pr.w, "Total revenue: $%.2f\n", ord.TotalRevenue)
	pr.p.Fprintf(pr.w, "Average order value: $%.2f\n", ord.AvgOrderValue)

	pr.p.Fprintf(pr.w, "\nOrder Status Distribution:\n")
	tw := tabwriter.NewWriter(pr.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tORDERS")
	for _, s := range byCount(ord.OrdersByStatus) {
		fmt.Fprintf(tw, "%s\t%d\n", s.name, s.count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	pr.p.Fprintf(pr.w, "\nTop %d Products by Revenue:\n", len(r.TopByRevenue))
	tw = tabwriter.NewWriter(pr.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRODUCT\tSKU\tCATEGORY\tQUANTITY\tREVENUE")
	for _, p := range r.TopByRevenue {
		pr.p.Fprintf(tw, "%s\t%s\t%s\t%d\t$%.2f\n", p.ProductName, p.ProductSKU, p.Category, p.Quantity, p.TotalPrice)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.UnresolvedSKUs) > 0 {
		pr.p.Fprintf(pr.w, "SKUs sold but missing from inventory: %d\n", len(r.UnresolvedSKUs))
	}
	return nil
}

func (pr *Printer) customers(r *analytics.Report) error {
	c := r.Customers
	pr.p.Fprintf(pr.w, "\n=== Customer Analysis ===\n\nCustomer Statistics:\n")
	pr.p.Fprintf(pr.w, "Total customers: %d\n", c.TotalCustomers)
	pr.p.Fprintf(pr.w, "Average orders per customer: %.2f\n", c.AvgOrdersPerCustomer)
	_, err := pr.p.Fprintf(pr.w, "Average customer lifetime value: $%.2f\n", c.AvgLifetimeValue)
	return err
}

type bucket struct {
	name  string
	count int
}

// byCount orders a distribution by count descending, then name.
func byCount(dist map[string]int) []bucket {
	out := make([]bucket, 0, len(dist))
	for name, n := range dist {
		out = append(out, bucket{name: name, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].name < out[j].name
	})
	return out
}

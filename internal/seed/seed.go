// Package seed fills both stores with random but consistent sample data. Every
// record goes through the regular usecases, so the same validation, caching and
// event publishing apply as for API writes.
package seed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer"
	customerdto "github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/metrics"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/order"
	orderdto "github.com/fekuna/omnipos-supplychain-service/internal/order/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/product"
	productdto "github.com/fekuna/omnipos-supplychain-service/internal/product/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier"
	supplierdto "github.com/fekuna/omnipos-supplychain-service/internal/supplier/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"go.uber.org/zap"
)

var Categories = []string{"Electronics", "Clothing", "Food", "Furniture", "Books", "Sports", "Tools", "Toys"}

type Config struct {
	Suppliers int
	Products  int
	Customers int
	Orders    int
	Seed      int64 // 0 picks a random seed
}

type Result struct {
	Suppliers int
	Products  int
	Customers int
	Orders    int
	Items     int
}

type Seeder struct {
	suppliers supplier.UseCase
	products  product.UseCase
	customers customer.UseCase
	orders    order.UseCase
	logger    logger.ZapLogger

	faker *gofakeit.Faker
	now   func() time.Time
}

func NewSeeder(suppliers supplier.UseCase, products product.UseCase, customers customer.UseCase, orders order.UseCase, seed int64, log logger.ZapLogger) *Seeder {
	return &Seeder{
		suppliers: suppliers,
		products:  products,
		customers: customers,
		orders:    orders,
		logger:    log,
		faker:     gofakeit.New(seed),
		now:       time.Now,
	}
}

// Run creates suppliers, then products, customers and orders. Products need at
// least one supplier and orders need at least one product and customer; a zero
// count upstream skips what depends on it.
func (s *Seeder) Run(ctx context.Context, cfg Config) (*Result, error) {
	res := &Result{}

	suppliers, err := s.seedSuppliers(ctx, cfg.Suppliers)
	res.Suppliers = len(suppliers)
	if err != nil {
		return res, err
	}

	var products []*model.Product
	if len(suppliers) > 0 {
		products, err = s.seedProducts(ctx, cfg.Products, suppliers)
		res.Products = len(products)
		if err != nil {
			return res, err
		}
	}

	customers, err := s.seedCustomers(ctx, cfg.Customers)
	res.Customers = len(customers)
	if err != nil {
		return res, err
	}

	if len(products) > 0 && len(customers) > 0 {
		res.Orders, res.Items, err = s.seedOrders(ctx, cfg.Orders, customers, products)
		if err != nil {
			return res, err
		}
	}

	s.logger.Info("sample data generated",
		zap.Int("suppliers", res.Suppliers),
		zap.Int("products", res.Products),
		zap.Int("customers", res.Customers),
		zap.Int("orders", res.Orders),
		zap.Int("order_items", res.Items),
	)
	return res, nil
}

func (s *Seeder) seedSuppliers(ctx context.Context, n int) ([]*model.Supplier, error) {
	out := make([]*model.Supplier, 0, n)
	for i := 0; i < n; i++ {
		address := s.address()
		created, err := s.suppliers.CreateSupplier(ctx, &supplierdto.CreateSupplierInput{
			Name:          s.faker.Company(),
			ContactPerson: s.faker.Name(),
			Email:         uniqueEmail(s.faker.Email(), i),
			Phone:         s.faker.Phone(),
			Address:       &address,
		})
		if err != nil {
			return out, fmt.Errorf("seed supplier %d: %w", i+1, err)
		}
		out = append(out, created)
	}
	metrics.RecordSeeded("supplier", len(out))
	return out, nil
}

func (s *Seeder) seedProducts(ctx context.Context, n int, suppliers []*model.Supplier) ([]*model.Product, error) {
	out := make([]*model.Product, 0, n)
	skus := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		sku := s.uniqueSKU(skus)

		description := s.faker.Sentence(20)
		supplierID := pick(s.faker, suppliers).ID
		created, err := s.products.CreateProduct(ctx, &productdto.CreateProductInput{
			Name:          s.faker.ProductName(),
			SKU:           sku,
			Description:   &description,
			UnitPrice:     round2(s.faker.Float64Range(10, 1000)),
			StockQuantity: s.faker.IntRange(0, 1000),
			ReorderPoint:  s.faker.IntRange(10, 100),
			Category:      pick(s.faker, Categories),
			SupplierID:    &supplierID,
		})
		if err != nil {
			return out, fmt.Errorf("seed product %d: %w", i+1, err)
		}
		out = append(out, created)
	}
	metrics.RecordSeeded("product", len(out))
	return out, nil
}

func (s *Seeder) seedCustomers(ctx context.Context, n int) ([]*model.Customer, error) {
	out := make([]*model.Customer, 0, n)
	for i := 0; i < n; i++ {
		address := s.address()
		created, err := s.customers.CreateCustomer(ctx, &customerdto.CreateCustomerInput{
			Name:    s.faker.Name(),
			Email:   uniqueEmail(s.faker.Email(), i),
			Phone:   s.faker.Phone(),
			Address: &address,
		})
		if err != nil {
			return out, fmt.Errorf("seed customer %d: %w", i+1, err)
		}
		out = append(out, created)
	}
	metrics.RecordSeeded("customer", len(out))
	return out, nil
}

func (s *Seeder) seedOrders(ctx context.Context, n int, customers []*model.Customer, products []*model.Product) (int, int, error) {
	end := s.now().UTC()
	start := end.AddDate(-1, 0, 0)

	orders, items := 0, 0
	for i := 0; i < n; i++ {
		date := s.faker.DateRange(start, end)
		lines := make([]orderdto.CreateOrderItemInput, s.faker.IntRange(1, 5))
		for j := range lines {
			p := pick(s.faker, products)
			price := p.UnitPrice
			lines[j] = orderdto.CreateOrderItemInput{
				ProductSKU: p.SKU,
				Quantity:   s.faker.IntRange(1, 10),
				UnitPrice:  &price,
			}
		}

		_, err := s.orders.CreateOrder(ctx, &orderdto.CreateOrderInput{
			CustomerID:      pick(s.faker, customers).ID,
			Status:          pick(s.faker, model.OrderStatuses),
			OrderDate:       &date,
			ShippingAddress: s.address(),
			Items:           lines,
		})
		if err != nil {
			return orders, items, fmt.Errorf("seed order %d: %w", i+1, err)
		}
		orders++
		items += len(lines)
	}
	metrics.RecordSeeded("order", orders)
	metrics.RecordSeeded("order_item", items)
	return orders, items, nil
}

func (s *Seeder) address() string {
	return s.faker.Address().Address
}

func (s *Seeder) uniqueSKU(taken map[string]struct{}) string {
	for {
		sku := s.ean13()
		if _, ok := taken[sku]; !ok {
			taken[sku] = struct{}{}
			return sku
		}
	}
}

// ean13 returns twelve random digits followed by their EAN-13 check digit.
func (s *Seeder) ean13() string {
	body := s.faker.Numerify("############")
	return body + string(rune('0'+EANCheckDigit(body)))
}

// EANCheckDigit computes the check digit for the first twelve digits of an
// EAN-13 code: odd positions weigh 1, even positions weigh 3.
func EANCheckDigit(body string) int {
	sum := 0
	for i, r := range body[:12] {
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// uniqueEmail tags the local part with i, since the stores reject duplicate emails.
func uniqueEmail(email string, i int) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok {
		return fmt.Sprintf("user%d@example.com", i)
	}
	return fmt.Sprintf("%s.%d@%s", local, i, domain)
}

func pick[T any](f *gofakeit.Faker, items []T) T {
	return items[f.IntRange(0, len(items)-1)]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

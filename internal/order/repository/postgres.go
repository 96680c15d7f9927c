package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/order/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/huandu/go-sqlbuilder"
)

type PGRepository struct {
	DB postgres.DBTX
}

func NewPGRepository(db postgres.DBTX) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	orderQuery := `
        INSERT INTO orders (id, customer_id, status, order_date, total_amount, shipping_address, created_at)
        VALUES (:id, :customer_id, :status, :order_date, :total_amount, :shipping_address, :created_at)
    `
	itemQuery := `
        INSERT INTO order_items (id, order_id, line_no, product_sku, quantity, unit_price, total_price, created_at)
        VALUES (:id, :order_id, :line_no, :product_sku, :quantity, :unit_price, :total_price, :created_at)
    `
	return postgres.InTx(ctx, r.DB, func(tx postgres.DBTX) error {
		if _, err := tx.NamedExecContext(ctx, orderQuery, o); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if len(o.Items) == 0 {
			return nil
		}
		if _, err := tx.NamedExecContext(ctx, itemQuery, o.Items); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	query := `SELECT * FROM orders WHERE id = $1 LIMIT 1`
	if err := r.DB.GetContext(ctx, &o, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}

	items := []model.OrderItem{}
	itemsQuery := `SELECT * FROM order_items WHERE order_id = $1 ORDER BY line_no`
	if err := r.DB.SelectContext(ctx, &items, itemsQuery, id); err != nil {
		return nil, fmt.Errorf("find items of order %s: %w", id, err)
	}
	o.Items = items
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	where := func(sb *sqlbuilder.SelectBuilder) {
		if f.CustomerID != "" {
			sb.Where(sb.Equal("customer_id", f.CustomerID))
		}
		if f.Status != "" {
			sb.Where(sb.Equal("status", string(f.Status)))
		}
	}

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)").From("orders")
	where(countSb)

	countQuery, countArgs := countSb.Build()
	var count int
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From("orders")
	where(sb)
	sb.OrderBy("order_date DESC", "id")
	sb.Limit(f.Limit).Offset(f.Skip)

	query, args := sb.Build()
	orders := []model.Order{}
	if err := r.DB.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}
	return orders, count, nil
}

func (r *PGRepository) FindItemsByOrderIDs(ctx context.Context, orderIDs []string) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	if len(orderIDs) == 0 {
		return items, nil
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From("order_items")
	sb.Where(sb.In("order_id", sqlbuilder.Flatten(orderIDs)...))
	sb.OrderBy("created_at", "order_id", "line_no")

	query, args := sb.Build()
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("find order items: %w", err)
	}
	return items, nil
}

func (r *PGRepository) FetchAll(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := r.DB.SelectContext(ctx, &orders, `SELECT * FROM orders ORDER BY order_date, id`); err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	return orders, nil
}

// FetchAllItems returns every item in insertion order, which is the first-seen
// order the top-selling ranking breaks ties by.
func (r *PGRepository) FetchAllItems(ctx context.Context) ([]model.OrderItem, error) {
	items := []model.OrderItem{}
	if err := r.DB.SelectContext(ctx, &items, `SELECT * FROM order_items ORDER BY created_at, order_id, line_no`); err != nil {
		return nil, fmt.Errorf("fetch order items: %w", err)
	}
	return items, nil
}

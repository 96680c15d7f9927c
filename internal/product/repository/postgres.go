package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/product/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/huandu/go-sqlbuilder"
)

type PGRepository struct {
	DB postgres.DBTX
}

func NewPGRepository(db postgres.DBTX) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, sku, description, unit_price, stock_quantity,
            reorder_point, category, supplier_id, created_at
        )
        VALUES (
            :id, :name, :sku, :description, :unit_price, :stock_quantity,
            :reorder_point, :category, :supplier_id, :created_at
        )
    `
	if _, err := r.DB.NamedExecContext(ctx, query, p); err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperr.Conflict("product with sku %q already exists", p.SKU)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	return r.findOne(ctx, `SELECT * FROM products WHERE sku = $1 LIMIT 1`, sku)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg string) (*model.Product, error) {
	var product model.Product
	if err := r.DB.GetContext(ctx, &product, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product %s: %w", arg, err)
	}
	return &product, nil
}

func (r *PGRepository) FindBySKUs(ctx context.Context, skus []string) ([]model.Product, error) {
	products := []model.Product{}
	if len(skus) == 0 {
		return products, nil
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From("products")
	sb.Where(sb.In("sku", sqlbuilder.Flatten(skus)...))

	query, args := sb.Build()
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("find products by sku: %w", err)
	}
	return products, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	where := func(sb *sqlbuilder.SelectBuilder) {
		if f.Category != "" {
			sb.Where(sb.Equal("category", f.Category))
		}
		if f.SearchQuery != "" {
			pattern := "%" + f.SearchQuery + "%"
			sb.Where(sb.Or(
				sb.ILike("name", pattern),
				sb.ILike("sku", pattern),
				sb.ILike("description", pattern),
			))
		}
		if f.LowStock {
			sb.Where("stock_quantity <= reorder_point")
		}
	}

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)").From("products")
	where(countSb)

	countQuery, countArgs := countSb.Build()
	var count int
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From("products")
	where(sb)
	if f.LowStock {
		sb.OrderBy("stock_quantity - reorder_point", "sku")
	} else {
		sb.OrderBy("created_at", "id")
	}
	sb.Limit(f.Limit).Offset(f.Skip)

	query, args := sb.Build()
	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, count, nil
}

func (r *PGRepository) FetchAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY created_at, id`); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return products, nil
}

func (r *PGRepository) IsSKUUnique(ctx context.Context, sku string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM products WHERE sku = $1`
	if err := r.DB.GetContext(ctx, &count, query, sku); err != nil {
		return false, fmt.Errorf("check product sku: %w", err)
	}
	return count == 0, nil
}

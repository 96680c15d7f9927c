package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/customer/dto"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/huandu/go-sqlbuilder"
)

type PGRepository struct {
	DB postgres.DBTX
}

func NewPGRepository(db postgres.DBTX) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (id, name, email, phone, address, created_at)
        VALUES (:id, :name, :email, :phone, :address, :created_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, c); err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperr.Conflict("customer with email %q already exists", c.Email)
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT * FROM customers WHERE id = $1 LIMIT 1`
	if err := r.DB.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer %s: %w", id, err)
	}
	return &c, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, int, error) {
	where := func(sb *sqlbuilder.SelectBuilder) {
		if f.SearchQuery != "" {
			pattern := "%" + f.SearchQuery + "%"
			sb.Where(sb.Or(sb.ILike("name", pattern), sb.ILike("email", pattern)))
		}
	}

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)").From("customers")
	where(countSb)

	countQuery, countArgs := countSb.Build()
	var count int
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count customers: %w", err)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From("customers")
	where(sb)
	sb.OrderBy("created_at", "id")
	sb.Limit(f.Limit).Offset(f.Skip)

	query, args := sb.Build()
	customers := []model.Customer{}
	if err := r.DB.SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list customers: %w", err)
	}
	return customers, count, nil
}

func (r *PGRepository) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM customers WHERE email = $1`
	if err := r.DB.GetContext(ctx, &count, query, email); err != nil {
		return false, fmt.Errorf("check customer email: %w", err)
	}
	return count == 0, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier/dto"
	"github.com/fekuna/omnipos-supplychain-service/pkg/database/postgres"
	"github.com/huandu/go-sqlbuilder"
)

type PGRepository struct {
	DB postgres.DBTX
}

func NewPGRepository(db postgres.DBTX) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `
        INSERT INTO suppliers (id, name, contact_person, email, phone, address, created_at)
        VALUES (:id, :name, :contact_person, :email, :phone, :address, :created_at)
    `
	if _, err := r.DB.NamedExecContext(ctx, query, s); err != nil {
		if postgres.IsUniqueViolation(err) {
			return apperr.Conflict("supplier with email %q already exists", s.Email)
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Supplier, error) {
	var s model.Supplier
	query := `SELECT * FROM suppliers WHERE id = $1 LIMIT 1`
	if err := r.DB.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find supplier %s: %w", id, err)
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.SupplierFilters) ([]model.Supplier, int, error) {
	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)").From("suppliers")

	countQuery, countArgs := countSb.Build()
	var count int
	if err := r.DB.GetContext(ctx, &count, countQuery, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("*").From("suppliers")
	sb.OrderBy("created_at", "id")
	sb.Limit(f.Limit).Offset(f.Skip)

	query, args := sb.Build()
	suppliers := []model.Supplier{}
	if err := r.DB.SelectContext(ctx, &suppliers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, count, nil
}

func (r *PGRepository) IsEmailUnique(ctx context.Context, email string) (bool, error) {
	var count int
	query := `SELECT count(*) FROM suppliers WHERE email = $1`
	if err := r.DB.GetContext(ctx, &count, query, email); err != nil {
		return false, fmt.Errorf("check supplier email: %w", err)
	}
	return count == 0, nil
}

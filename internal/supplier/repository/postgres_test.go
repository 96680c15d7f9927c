package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/internal/model"
	"github.com/fekuna/omnipos-supplychain-service/internal/supplier/dto"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var supplierColumns = []string{"id", "created_at", "name", "contact_person", "email", "phone", "address"}

func newMockRepo(t *testing.T) (*PGRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPGRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestCreateMapsUniqueViolationToConflict(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO suppliers`).WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Create(context.Background(), &model.Supplier{Email: "a@b.c"})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateInsertsRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(`INSERT INTO suppliers`).WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &model.Supplier{
		BaseModel: model.BaseModel{ID: "s1", CreatedAt: time.Now()},
		Name:      "Acme",
		Email:     "sales@acme.test",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFoundReturnsNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT \* FROM suppliers WHERE id = \$1`).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	s, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestFindByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM suppliers WHERE id = \$1`).WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(supplierColumns).AddRow("s1", now, "Acme", "Jo", "sales@acme.test", "555", nil))

	s, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "Acme", s.Name)
	assert.Equal(t, "Jo", s.ContactPerson)
	assert.Nil(t, s.Address)
}

func TestFindAllPages(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM suppliers`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`SELECT \* FROM suppliers ORDER BY created_at, id LIMIT`).
		WillReturnRows(sqlmock.NewRows(supplierColumns).
			AddRow("s3", now, "C", "Cy", "c@x.test", "3", nil).
			AddRow("s4", now, "D", "Di", "d@x.test", "4", "1 Road"))

	items, total, err := repo.FindAll(context.Background(), &dto.SupplierFilters{Skip: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, items, 2)
	assert.Equal(t, "s3", items[0].ID)
	require.NotNil(t, items[1].Address)
	assert.Equal(t, "1 Road", *items[1].Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsEmailUnique(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(`SELECT count\(\*\) FROM suppliers WHERE email = \$1`).WithArgs("a@b.c").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	unique, err := repo.IsEmailUnique(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.False(t, unique)
}

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func TestClearOrdersDeletesChildrenFirst(t *testing.T) {
	orders, mock := newMock(t)
	inventory, _ := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM order_items").WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec("DELETE FROM orders").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM customers").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	counts, err := NewPGRepository(inventory, orders).ClearOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"order_items": 12, "orders": 4, "customers": 2}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearInventoryRollsBackOnFailure(t *testing.T) {
	inventory, mock := newMock(t)
	orders, _ := newMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM products").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM suppliers").WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	_, err := NewPGRepository(inventory, orders).ClearInventory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear suppliers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

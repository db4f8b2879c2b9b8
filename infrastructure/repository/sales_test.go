package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return postgres.NewConnectionFromDB(db), mock
}

func TestSalesRepository_ListPaidOrders(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRepository(conn)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)
	createdAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT o.id, o.customer_id, o.location_id, o.status, o.total, o.created_at FROM orders o WHERE`).
		WithArgs("PAID", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "location_id", "status", "total", "created_at"}).
			AddRow("o1", "c1", "loc-1", "PAID", "150.00", createdAt).
			AddRow("o2", nil, nil, "PAID", "40.00", createdAt))

	mock.ExpectQuery(`FROM order_items oi WHERE oi.order_id = ANY`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "name", "item_type", "price", "quantity"}).
			AddRow("i1", "o1", "Troca de tela", "repair", "120.00", 1).
			AddRow("i2", "o1", "Película", nil, "15.00", 2))

	orders, err := repo.ListPaidOrders(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, "c1", *orders[0].CustomerID)
	assert.Equal(t, "150", orders[0].Total.String())
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, domain.ItemTypeRepair, orders[0].Items[0].Type())
	assert.Nil(t, orders[0].Items[1].ItemType)
	assert.Equal(t, domain.ItemTypeProduct, orders[0].Items[1].Type())

	assert.Nil(t, orders[1].CustomerID)
	assert.Nil(t, orders[1].LocationID)
	assert.Empty(t, orders[1].Items)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_ListOrders_SemPedidosNaoBuscaItens(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRepository(conn)

	mock.ExpectQuery(`FROM orders o WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "customer_id", "location_id", "status", "total", "created_at"}))

	orders, err := repo.ListOrders(context.Background(), time.Now().AddDate(0, 0, -7), time.Now())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSalesRepository_ListRefunds_ErroDoBanco(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSalesRepository(conn)

	mock.ExpectQuery(`FROM refunds rf`).WillReturnError(errors.New("connection reset"))

	refunds, err := repo.ListRefunds(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.Error(t, err)
	assert.Nil(t, refunds)
	assert.Contains(t, err.Error(), "erro ao listar reembolsos")
	assert.Contains(t, err.Error(), "connection reset")
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
	refundsTable    = "refunds rf"
	discountsTable  = "discounts d"
)

type SalesRepository interface {
	ListOrders(ctx context.Context, start, end time.Time) ([]*domain.Order, error)
	ListPaidOrders(ctx context.Context, start, end time.Time) ([]*domain.Order, error)
	ListRefunds(ctx context.Context, start, end time.Time) ([]*domain.Refund, error)
	ListDiscounts(ctx context.Context, start, end time.Time) ([]*domain.Discount, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// ListOrders retorna todos os pedidos do período (qualquer status) já com os itens
func (r *salesRepository) ListOrders(ctx context.Context, start, end time.Time) ([]*domain.Order, error) {
	return r.listOrders(ctx, createdBetween("o.created_at", start, end))
}

// ListPaidOrders retorna apenas pedidos PAID do período, base da classificação de receita
func (r *salesRepository) ListPaidOrders(ctx context.Context, start, end time.Time) ([]*domain.Order, error) {
	return r.listOrders(ctx, squirrel.And{
		squirrel.Eq{"o.status": domain.OrderStatusPaid},
		createdBetween("o.created_at", start, end),
	})
}

func (r *salesRepository) listOrders(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Order, error) {
	builder := psql.
		Select("o.id, o.customer_id, o.location_id, o.status, o.total, o.created_at").
		From(ordersTable).
		Where(where).
		OrderBy("o.created_at ASC")

	orders, err := selectList(ctx, r.conn, builder, scanOrder)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar pedidos")
	}

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems carrega os itens de todos os pedidos com uma única query (= ANY) e distribui em Go
func (r *salesRepository) attachItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]string, 0, len(orders))
	byID := make(map[string]*domain.Order, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
		byID[order.ID] = order
	}

	builder := psql.
		Select("oi.id, oi.order_id, oi.name, oi.item_type, oi.price, oi.quantity").
		From(orderItemsTable).
		Where("oi.order_id = ANY(?)", pq.Array(ids)).
		OrderBy("oi.order_id, oi.id")

	items, err := selectList(ctx, r.conn, builder, scanOrderItem)
	if err != nil {
		return errors.Wrap(err, "erro ao listar itens dos pedidos")
	}

	for _, item := range items {
		if order, ok := byID[item.OrderID]; ok {
			order.Items = append(order.Items, *item)
		}
	}

	return nil
}

func (r *salesRepository) ListRefunds(ctx context.Context, start, end time.Time) ([]*domain.Refund, error) {
	builder := psql.
		Select("rf.id, rf.order_id, rf.amount, rf.status, rf.reason, rf.created_at").
		From(refundsTable).
		Where(createdBetween("rf.created_at", start, end)).
		OrderBy("rf.created_at ASC")

	refunds, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Refund, error) {
		var (
			refund  domain.Refund
			orderID sql.NullString
			reason  sql.NullString
		)
		if err := row.Scan(&refund.ID, &orderID, &refund.Amount, &refund.Status, &reason, &refund.CreatedAt); err != nil {
			return nil, err
		}
		refund.OrderID = nullString(orderID)
		refund.Reason = nullString(reason)
		return &refund, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar reembolsos")
	}

	return refunds, nil
}

func (r *salesRepository) ListDiscounts(ctx context.Context, start, end time.Time) ([]*domain.Discount, error) {
	builder := psql.
		Select("d.id, d.code, d.type, d.value, d.active, d.usage_count, d.created_at").
		From(discountsTable).
		Where(createdBetween("d.created_at", start, end)).
		OrderBy("d.created_at ASC")

	discounts, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Discount, error) {
		var discount domain.Discount
		if err := row.Scan(
			&discount.ID,
			&discount.Code,
			&discount.Type,
			&discount.Value,
			&discount.Active,
			&discount.UsageCount,
			&discount.CreatedAt,
		); err != nil {
			return nil, err
		}
		return &discount, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar descontos")
	}

	return discounts, nil
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order      domain.Order
		customerID sql.NullString
		locationID sql.NullString
	)

	if err := row.Scan(
		&order.ID,
		&customerID,
		&locationID,
		&order.Status,
		&order.Total,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}

	order.CustomerID = nullString(customerID)
	order.LocationID = nullString(locationID)
	order.Items = make([]domain.OrderItem, 0)

	return &order, nil
}

func scanOrderItem(row rowScanner) (*domain.OrderItem, error) {
	var (
		item     domain.OrderItem
		itemType sql.NullString
	)

	if err := row.Scan(&item.ID, &item.OrderID, &item.Name, &itemType, &item.Price, &item.Quantity); err != nil {
		return nil, err
	}

	item.ItemType = nullString(itemType)

	return &item, nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	ListBookings(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	ListMailIns(ctx context.Context, start, end time.Time) ([]*domain.MailIn, error)
	ListStoreCredit(ctx context.Context, start, end time.Time) ([]*domain.StoreCreditTransaction, error)
	ListLoyaltyActivities(ctx context.Context, start, end time.Time) ([]*domain.LoyaltyActivity, error)
	ListReviews(ctx context.Context, start, end time.Time) ([]*domain.Review, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

// ListCustomers retorna a base inteira; novos clientes são separados pelo created_at no redutor
func (r *customerRepository) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	builder := psql.
		Select("cu.id, cu.name, cu.email, cu.created_at").
		From("customers cu").
		OrderBy("cu.created_at ASC")

	customers, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Customer, error) {
		var (
			customer domain.Customer
			email    sql.NullString
		)
		if err := row.Scan(&customer.ID, &customer.Name, &email, &customer.CreatedAt); err != nil {
			return nil, err
		}
		customer.Email = nullString(email)
		return &customer, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar clientes")
	}

	return customers, nil
}

func (r *customerRepository) ListBookings(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	builder := psql.
		Select("bk.id, bk.customer_id, bk.status, bk.converted_to_ticket, bk.created_at").
		From("bookings bk").
		Where(createdBetween("bk.created_at", start, end)).
		OrderBy("bk.created_at ASC")

	bookings, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Booking, error) {
		var (
			booking    domain.Booking
			customerID sql.NullString
		)
		if err := row.Scan(&booking.ID, &customerID, &booking.Status, &booking.ConvertedToTicket, &booking.CreatedAt); err != nil {
			return nil, err
		}
		booking.CustomerID = nullString(customerID)
		return &booking, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar agendamentos")
	}

	return bookings, nil
}

func (r *customerRepository) ListMailIns(ctx context.Context, start, end time.Time) ([]*domain.MailIn, error) {
	builder := psql.
		Select("mi.id, mi.customer_id, mi.status, mi.converted_to_ticket, mi.created_at").
		From("mail_ins mi").
		Where(createdBetween("mi.created_at", start, end)).
		OrderBy("mi.created_at ASC")

	mailIns, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.MailIn, error) {
		var (
			mailIn     domain.MailIn
			customerID sql.NullString
		)
		if err := row.Scan(&mailIn.ID, &customerID, &mailIn.Status, &mailIn.ConvertedToTicket, &mailIn.CreatedAt); err != nil {
			return nil, err
		}
		mailIn.CustomerID = nullString(customerID)
		return &mailIn, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar reparos pelo correio")
	}

	return mailIns, nil
}

func (r *customerRepository) ListStoreCredit(ctx context.Context, start, end time.Time) ([]*domain.StoreCreditTransaction, error) {
	builder := psql.
		Select("sc.id, sc.customer_id, sc.type, sc.amount, sc.created_at").
		From("store_credit_transactions sc").
		Where(createdBetween("sc.created_at", start, end)).
		OrderBy("sc.created_at ASC")

	transactions, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.StoreCreditTransaction, error) {
		var transaction domain.StoreCreditTransaction
		if err := row.Scan(&transaction.ID, &transaction.CustomerID, &transaction.Type, &transaction.Amount, &transaction.CreatedAt); err != nil {
			return nil, err
		}
		return &transaction, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar créditos de loja")
	}

	return transactions, nil
}

func (r *customerRepository) ListLoyaltyActivities(ctx context.Context, start, end time.Time) ([]*domain.LoyaltyActivity, error) {
	builder := psql.
		Select("la.id, la.customer_id, la.type, la.points, la.created_at").
		From("loyalty_activities la").
		Where(createdBetween("la.created_at", start, end)).
		OrderBy("la.created_at ASC")

	activities, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.LoyaltyActivity, error) {
		var activity domain.LoyaltyActivity
		if err := row.Scan(&activity.ID, &activity.CustomerID, &activity.Type, &activity.Points, &activity.CreatedAt); err != nil {
			return nil, err
		}
		return &activity, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar atividades de fidelidade")
	}

	return activities, nil
}

func (r *customerRepository) ListReviews(ctx context.Context, start, end time.Time) ([]*domain.Review, error) {
	builder := psql.
		Select("rv.id, rv.customer_id, rv.rating, rv.created_at").
		From("reviews rv").
		Where(createdBetween("rv.created_at", start, end)).
		OrderBy("rv.created_at ASC")

	reviews, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Review, error) {
		var (
			review     domain.Review
			customerID sql.NullString
		)
		if err := row.Scan(&review.ID, &customerID, &review.Rating, &review.CreatedAt); err != nil {
			return nil, err
		}
		review.CustomerID = nullString(customerID)
		return &review, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar avaliações")
	}

	return reviews, nil
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

type FinanceRepository interface {
	ListBills(ctx context.Context, start, end time.Time) ([]*domain.Bill, error)
	ListPayroll(ctx context.Context, start, end time.Time) ([]*domain.Payroll, error)
	ListGoals(ctx context.Context, start, end time.Time) ([]*domain.Goal, error)
}

type financeRepository struct {
	conn *postgres.Connection
}

func NewFinanceRepository(conn *postgres.Connection) FinanceRepository {
	return &financeRepository{
		conn: conn,
	}
}

func (r *financeRepository) ListBills(ctx context.Context, start, end time.Time) ([]*domain.Bill, error) {
	builder := psql.
		Select("bl.id, bl.name, bl.amount, bl.status, bl.due_date, bl.created_at").
		From("bills bl").
		Where(createdBetween("bl.created_at", start, end)).
		OrderBy("bl.created_at ASC")

	bills, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Bill, error) {
		var bill domain.Bill
		if err := row.Scan(&bill.ID, &bill.Name, &bill.Amount, &bill.Status, &bill.DueDate, &bill.CreatedAt); err != nil {
			return nil, err
		}
		return &bill, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar contas a pagar")
	}

	return bills, nil
}

func (r *financeRepository) ListPayroll(ctx context.Context, start, end time.Time) ([]*domain.Payroll, error) {
	builder := psql.
		Select("pr.id, pr.staff_id, pr.amount, pr.status, pr.paid_at, pr.created_at").
		From("payrolls pr").
		Where(createdBetween("pr.created_at", start, end)).
		OrderBy("pr.created_at ASC")

	payroll, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Payroll, error) {
		var (
			entry  domain.Payroll
			paidAt sql.NullTime
		)
		if err := row.Scan(&entry.ID, &entry.StaffID, &entry.Amount, &entry.Status, &paidAt, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entry.PaidAt = nullTime(paidAt)
		return &entry, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar folha de pagamento")
	}

	return payroll, nil
}

func (r *financeRepository) ListGoals(ctx context.Context, start, end time.Time) ([]*domain.Goal, error) {
	builder := psql.
		Select("g.id, g.name, g.target, g.current, gc.name, g.created_at").
		From("goals g").
		LeftJoin("goal_categories gc ON gc.id = g.category_id").
		Where(createdBetween("g.created_at", start, end)).
		OrderBy("g.created_at ASC")

	goals, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Goal, error) {
		var (
			goal     domain.Goal
			category sql.NullString
		)
		if err := row.Scan(&goal.ID, &goal.Name, &goal.Target, &goal.Current, &category, &goal.CreatedAt); err != nil {
			return nil, err
		}
		goal.CategoryName = nullString(category)
		return &goal, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar metas")
	}

	return goals, nil
}

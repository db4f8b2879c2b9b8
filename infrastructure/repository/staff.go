package repository

import (
	"context"

	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

type StaffRepository interface {
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
}

type staffRepository struct {
	conn *postgres.Connection
}

func NewStaffRepository(conn *postgres.Connection) StaffRepository {
	return &staffRepository{
		conn: conn,
	}
}

func (r *staffRepository) ListStaff(ctx context.Context) ([]*domain.Staff, error) {
	builder := psql.
		Select("sf.id, sf.name, sf.role, sf.available, sf.total_repairs, sf.total_sales, sf.average_rating, sf.created_at").
		From("staff sf").
		OrderBy("sf.name ASC")

	staff, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Staff, error) {
		var member domain.Staff
		if err := row.Scan(
			&member.ID,
			&member.Name,
			&member.Role,
			&member.Available,
			&member.TotalRepairs,
			&member.TotalSales,
			&member.AverageRating,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		return &member, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar funcionários")
	}

	return staff, nil
}

package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
	"github.com/repairdesk/backoffice-analytics/internal/domain"
)

type LocationRepository interface {
	ListLocations(ctx context.Context) ([]*domain.Location, error)
	ListStockByLocation(ctx context.Context, locationID string) ([]*domain.StockLevel, error)
}

type locationRepository struct {
	conn *postgres.Connection
}

func NewLocationRepository(conn *postgres.Connection) LocationRepository {
	return &locationRepository{
		conn: conn,
	}
}

func (r *locationRepository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	builder := psql.
		Select("l.id, l.name, l.address, l.active").
		From("locations l").
		OrderBy("l.name ASC, l.id ASC")

	locations, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.Location, error) {
		var (
			location domain.Location
			address  sql.NullString
		)
		if err := row.Scan(&location.ID, &location.Name, &address, &location.Active); err != nil {
			return nil, err
		}
		location.Address = nullString(address)
		return &location, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar lojas")
	}

	return locations, nil
}

// ListStockByLocation traz o estoque de uma loja com o preço da variação para calcular valor
func (r *locationRepository) ListStockByLocation(ctx context.Context, locationID string) ([]*domain.StockLevel, error) {
	builder := psql.
		Select("sl.location_id, sl.variation_id, sl.quantity, iv.price").
		From("stock_levels sl").
		Join("inventory_variations iv ON iv.id = sl.variation_id").
		Where(squirrel.Eq{"sl.location_id": locationID}).
		OrderBy("sl.variation_id ASC")

	levels, err := selectList(ctx, r.conn, builder, func(row rowScanner) (*domain.StockLevel, error) {
		var level domain.StockLevel
		if err := row.Scan(&level.LocationID, &level.VariationID, &level.Quantity, &level.Price); err != nil {
			return nil, err
		}
		return &level, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar estoque da loja %s", locationID)
	}

	return levels, nil
}

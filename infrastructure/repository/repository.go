package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/repairdesk/backoffice-analytics/infrastructure/database/postgres"
)

// rowScanner é satisfeito tanto por *sql.Row quanto por *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// psql já vem com o placeholder do postgres ($1, $2...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// createdBetween filtra uma coluna de data no intervalo fechado [start, end]
func createdBetween(column string, start, end time.Time) squirrel.And {
	return squirrel.And{
		squirrel.GtOrEq{column: start},
		squirrel.LtOrEq{column: end},
	}
}

// selectList executa a query e escaneia cada linha com scan. Erros do driver são
// devolvidos com contexto, sem tratamento adicional.
func selectList[T any](
	ctx context.Context,
	conn *postgres.Connection,
	builder squirrel.SelectBuilder,
	scan func(rowScanner) (*T, error),
) ([]*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a query")
	}
	defer rows.Close()

	result := make([]*T, 0)
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear registro")
		}
		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return result, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	value := ns.String
	return &value
}

func nullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	value := nt.Time
	return &value
}

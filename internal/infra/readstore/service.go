package readstore

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/money"
	"pawbook/internal/pkg/pgconv"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

const serviceSelect = `SELECT id, name, price_pence, active, created_at, updated_at FROM services`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, serviceSelect+` WHERE id = $1`, id)

	view, err := scanService(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return view, nil
}

func (r *ServiceReadStore) List(ctx context.Context, filters queries.ServiceFilters) ([]*queries.ServiceView, error) {
	query := serviceSelect + ` WHERE 1=1`
	args := []any{}

	if filters.Active != nil {
		args = append(args, *filters.Active)
		query += ` AND active = $` + argn(len(args))
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var result []*queries.ServiceView
	for rows.Next() {
		view, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return result, nil
}

func scanService(row rowScanner) (*queries.ServiceView, error) {
	var v queries.ServiceView
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.Name, &v.PricePence, &v.Active, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.Price = money.Format(v.PricePence)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

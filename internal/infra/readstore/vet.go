package readstore

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VetReadStore struct {
	db db.DBTX
}

func NewVetReadStore(db db.DBTX) *VetReadStore {
	return &VetReadStore{db: db}
}

const vetSelect = `SELECT id, name, practice, phone, address_line, created_at, updated_at FROM vets`

func (r *VetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VetView, error) {
	row := r.db.QueryRow(ctx, vetSelect+` WHERE id = $1`, id)

	view, err := scanVet(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vet by ID", err)
	}
	return view, nil
}

func (r *VetReadStore) List(ctx context.Context) ([]*queries.VetView, error) {
	rows, err := r.db.Query(ctx, vetSelect+` ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vets", err)
	}
	defer rows.Close()

	var result []*queries.VetView
	for rows.Next() {
		view, err := scanVet(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan vet row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vet rows", err)
	}
	return result, nil
}

func scanVet(row rowScanner) (*queries.VetView, error) {
	var v queries.VetView
	var practice, phone, address pgtype.Text
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.Name, &practice, &phone, &address, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.Practice = pgconv.StringPtrFromPgtype(practice)
	v.Phone = pgconv.StringPtrFromPgtype(phone)
	v.AddressLine = pgconv.StringPtrFromPgtype(address)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

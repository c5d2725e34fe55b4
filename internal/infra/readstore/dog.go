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

const dogSelect = `
	SELECT d.id, d.customer_id, c.first_name || ' ' || c.last_name,
	       d.vet_id, v.name,
	       d.name, d.breed, d.date_of_birth, d.notes, d.active,
	       d.created_at, d.updated_at
	FROM dogs d
	JOIN customers c ON c.id = d.customer_id
	LEFT JOIN vets v ON v.id = d.vet_id`

type DogReadStore struct {
	db db.DBTX
}

func NewDogReadStore(db db.DBTX) *DogReadStore {
	return &DogReadStore{db: db}
}

func (r *DogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.DogView, error) {
	row := r.db.QueryRow(ctx, dogSelect+` WHERE d.id = $1`, id)

	view, err := scanDog(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("dog not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find dog by ID", err)
	}
	return view, nil
}

func (r *DogReadStore) List(ctx context.Context, filters queries.DogFilters) ([]*queries.DogView, error) {
	query := dogSelect + ` WHERE 1=1`
	args := []any{}

	if filters.CustomerID != nil {
		args = append(args, *filters.CustomerID)
		query += ` AND d.customer_id = $` + argn(len(args))
	}
	if filters.Active != nil {
		args = append(args, *filters.Active)
		query += ` AND d.active = $` + argn(len(args))
	}
	query += ` ORDER BY d.name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list dogs", err)
	}
	defer rows.Close()

	var result []*queries.DogView
	for rows.Next() {
		view, err := scanDog(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan dog row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read dog rows", err)
	}
	return result, nil
}

func scanDog(row rowScanner) (*queries.DogView, error) {
	var v queries.DogView
	var vetID pgtype.UUID
	var vetName, breed, notes pgtype.Text
	var dateOfBirth pgtype.Date
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &vetID, &vetName,
		&v.Name, &breed, &dateOfBirth, &notes, &v.Active, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.VetID = pgconv.UUIDPtrFromPgtype(vetID)
	v.VetName = pgconv.StringPtrFromPgtype(vetName)
	v.Breed = pgconv.StringPtrFromPgtype(breed)
	v.DateOfBirth = pgconv.DatePtrFromPgtype(dateOfBirth)
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

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

const customerColumns = `id, first_name, last_name, email, phone, address_line, postcode,
	emergency_contact, emergency_phone, active, created_at, updated_at`

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)

	view, err := scanCustomer(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}
	return view, nil
}

func (r *CustomerReadStore) List(ctx context.Context, filters queries.CustomerFilters) ([]*queries.CustomerView, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := []any{}

	if filters.Active != nil {
		args = append(args, *filters.Active)
		query += ` AND active = $` + argn(len(args))
	}
	if filters.Search != nil && *filters.Search != "" {
		args = append(args, "%"+*filters.Search+"%")
		n := argn(len(args))
		query += ` AND (first_name ILIKE $` + n + ` OR last_name ILIKE $` + n + `)`
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*queries.CustomerView
	for rows.Next() {
		view, err := scanCustomer(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*queries.CustomerView, error) {
	var v queries.CustomerView
	var email, phone, address, postcode pgtype.Text
	var emergencyContact, emergencyPhone pgtype.Text
	var createdAt, updatedAt pgtype.Timestamptz
	err := row.Scan(&v.ID, &v.FirstName, &v.LastName, &email, &phone, &address, &postcode,
		&emergencyContact, &emergencyPhone, &v.Active, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.Email = pgconv.StringPtrFromPgtype(email)
	v.Phone = pgconv.StringPtrFromPgtype(phone)
	v.AddressLine = pgconv.StringPtrFromPgtype(address)
	v.Postcode = pgconv.StringPtrFromPgtype(postcode)
	v.EmergencyContact = pgconv.StringPtrFromPgtype(emergencyContact)
	v.EmergencyPhone = pgconv.StringPtrFromPgtype(emergencyPhone)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

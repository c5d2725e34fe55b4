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

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const userSelect = `SELECT id, email, name, role, is_active, last_sign_in, created_at, updated_at FROM users`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx, userSelect+` WHERE id = $1`, id)

	view, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return view, nil
}

// FindByEmail returns the user view together with the stored password hash
// for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, name, role, is_active, last_sign_in, created_at, updated_at, password_hash
		 FROM users WHERE email = $1`, email)

	var v queries.UserView
	var lastSignIn pgtype.Timestamptz
	var createdAt, updatedAt pgtype.Timestamptz
	var passwordHash string

	err := row.Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive,
		&lastSignIn, &createdAt, &updatedAt, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	v.LastSignIn = pgconv.TimePtrFromPgtype(lastSignIn)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, passwordHash, nil
}

func (r *UserReadStore) List(ctx context.Context, filters queries.UserFilters) ([]*queries.UserView, error) {
	query := userSelect + ` WHERE 1=1`
	args := []any{}

	if filters.Name != nil {
		args = append(args, "%"+*filters.Name+"%")
		query += ` AND name ILIKE $` + argn(len(args))
	}
	if filters.Email != nil {
		args = append(args, "%"+*filters.Email+"%")
		query += ` AND email ILIKE $` + argn(len(args))
	}
	if filters.Active != nil {
		args = append(args, *filters.Active)
		query += ` AND is_active = $` + argn(len(args))
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		view, err := scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read user rows", err)
	}
	return result, nil
}

func scanUser(row rowScanner) (*queries.UserView, error) {
	var v queries.UserView
	var lastSignIn pgtype.Timestamptz
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.Email, &v.Name, &v.Role, &v.IsActive, &lastSignIn, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.LastSignIn = pgconv.TimePtrFromPgtype(lastSignIn)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

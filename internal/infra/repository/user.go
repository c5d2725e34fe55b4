package repository

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"

	"github.com/google/uuid"
)

type UserRecord struct {
	Email        string
	Name         string
	PasswordHash string
	Role         string
	IsActive     bool
}

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, rec UserRecord) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		rec.Email, rec.Name, rec.PasswordHash, rec.Role, rec.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec UserRecord) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET email = $2, name = $3, password_hash = $4, role = $5, is_active = $6, updated_at = now()
		WHERE id = $1`,
		id, rec.Email, rec.Name, rec.PasswordHash, rec.Role, rec.IsActive)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) RecordSignIn(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, `UPDATE users SET last_sign_in = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record sign-in", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

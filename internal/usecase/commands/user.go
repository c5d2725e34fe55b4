package commands

import (
	"context"

	"pawbook/internal/domain/user"
	reqdto "pawbook/internal/handler/dto/request"
	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/infra/repository"
	"pawbook/internal/pkg/errs"
	"pawbook/internal/pkg/password"
	"pawbook/internal/pkg/patch"
	"pawbook/internal/usecase/queries"
	"pawbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrUserNotFound   = errs.New("user not found")
	ErrDuplicateEmail = errs.New("email already registered")
	ErrLastAdmin      = errs.New("cannot remove the last admin")
	ErrWeakPassword   = errs.New("password does not meet requirements")
)

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.UserRecord) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.UserRecord) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserCommands interface {
	CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	repo      UserRepository
	readStore queries.UserReadStore
	pool      *pgxpool.Pool
}

func NewUserCommands(repo UserRepository, readStore queries.UserReadStore, pool *pgxpool.Pool) UserCommands {
	return &userCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *userCommandsImpl) CreateUser(ctx context.Context, req reqdto.CreateUserRequest) (*queries.UserView, error) {
	if _, err := user.NewRole(req.Role); err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrWeakPassword)
	}

	rec := repository.UserRecord{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.Create(ctx, tx, rec)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *userCommandsImpl) UpdateUser(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	_, currentHash, err := c.readStore.FindByEmail(ctx, current.Email)
	if err != nil {
		return nil, err
	}

	hash := currentHash
	if req.Password != nil {
		hash, err = password.HashPassword(*req.Password)
		if err != nil {
			return nil, errs.Mark(err, ErrWeakPassword)
		}
	}

	role := patch.Coalesce(req.Role, current.Role)
	if _, err := user.NewRole(role); err != nil {
		return nil, err
	}

	rec := repository.UserRecord{
		Email:        patch.Coalesce(req.Email, current.Email),
		Name:         patch.Coalesce(req.Name, current.Name),
		PasswordHash: hash,
		Role:         role,
		IsActive:     patch.Coalesce(req.IsActive, current.IsActive),
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrUserNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *userCommandsImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if current.Role == string(user.RoleAdmin) {
		users, err := c.readStore.List(ctx, queries.UserFilters{})
		if err != nil {
			return err
		}
		admins := 0
		for _, u := range users {
			if u.Role == string(user.RoleAdmin) && u.IsActive {
				admins++
			}
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

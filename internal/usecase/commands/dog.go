package commands

import (
	"context"

	reqdto "pawbook/internal/handler/dto/request"
	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/infra/repository"
	"pawbook/internal/pkg/errs"
	"pawbook/internal/pkg/patch"
	"pawbook/internal/usecase/queries"
	"pawbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrDogNotFound = errs.New("dog not found")
	ErrDogInUse    = errs.New("dog has dependent records")
	ErrDogOwner    = errs.New("dog owner not found")
)

type DogRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.DogRecord, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.DogRecord, updatedBy uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type DogCommands interface {
	CreateDog(ctx context.Context, req reqdto.CreateDogRequest, actorID uuid.UUID) (*queries.DogView, error)
	UpdateDog(ctx context.Context, id uuid.UUID, req reqdto.UpdateDogRequest, actorID uuid.UUID) (*queries.DogView, error)
	DeleteDog(ctx context.Context, id uuid.UUID) error
}

type dogCommandsImpl struct {
	repo      DogRepository
	readStore queries.DogReadStore
	pool      *pgxpool.Pool
}

func NewDogCommands(repo DogRepository, readStore queries.DogReadStore, pool *pgxpool.Pool) DogCommands {
	return &dogCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *dogCommandsImpl) CreateDog(ctx context.Context, req reqdto.CreateDogRequest, actorID uuid.UUID) (*queries.DogView, error) {
	rec := repository.DogRecord{
		CustomerID: req.CustomerID,
		VetID:      req.VetID,
		Name:       req.Name,
		Breed:      req.Breed,
		Notes:      req.Notes,
		Active:     true,
	}
	if req.DateOfBirth != nil {
		dob, err := reqdto.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, errs.Wrap(err, "invalid date of birth")
		}
		rec.DateOfBirth = &dob
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.Create(ctx, tx, rec, actorID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrDogOwner
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *dogCommandsImpl) UpdateDog(ctx context.Context, id uuid.UUID, req reqdto.UpdateDogRequest, actorID uuid.UUID) (*queries.DogView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}

	rec := repository.DogRecord{
		CustomerID:  patch.Coalesce(req.CustomerID, current.CustomerID),
		VetID:       patch.CoalescePtr(req.VetID, current.VetID),
		Name:        patch.Coalesce(req.Name, current.Name),
		Breed:       patch.CoalescePtr(req.Breed, current.Breed),
		DateOfBirth: current.DateOfBirth,
		Notes:       patch.CoalescePtr(req.Notes, current.Notes),
		Active:      patch.Coalesce(req.Active, current.Active),
	}
	if req.DateOfBirth != nil {
		dob, err := reqdto.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, errs.Wrap(err, "invalid date of birth")
		}
		rec.DateOfBirth = &dob
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec, actorID)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrDogNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrDogOwner
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *dogCommandsImpl) DeleteDog(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrDogNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrDogInUse
		}
		return err
	}
	return nil
}

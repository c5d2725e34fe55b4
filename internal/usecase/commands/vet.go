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
	ErrVetNotFound = errs.New("vet not found")
	ErrVetInUse    = errs.New("vet has dependent records")
)

type VetRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.VetRecord) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.VetRecord) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type VetCommands interface {
	CreateVet(ctx context.Context, req reqdto.CreateVetRequest) (*queries.VetView, error)
	UpdateVet(ctx context.Context, id uuid.UUID, req reqdto.UpdateVetRequest) (*queries.VetView, error)
	DeleteVet(ctx context.Context, id uuid.UUID) error
}

type vetCommandsImpl struct {
	repo      VetRepository
	readStore queries.VetReadStore
	pool      *pgxpool.Pool
}

func NewVetCommands(repo VetRepository, readStore queries.VetReadStore, pool *pgxpool.Pool) VetCommands {
	return &vetCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *vetCommandsImpl) CreateVet(ctx context.Context, req reqdto.CreateVetRequest) (*queries.VetView, error) {
	rec := repository.VetRecord{
		Name:        req.Name,
		Practice:    req.Practice,
		Phone:       req.Phone,
		AddressLine: req.AddressLine,
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.Create(ctx, tx, rec)
	})
	if err != nil {
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *vetCommandsImpl) UpdateVet(ctx context.Context, id uuid.UUID, req reqdto.UpdateVetRequest) (*queries.VetView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVetNotFound
		}
		return nil, err
	}

	rec := repository.VetRecord{
		Name:        patch.Coalesce(req.Name, current.Name),
		Practice:    patch.CoalescePtr(req.Practice, current.Practice),
		Phone:       patch.CoalescePtr(req.Phone, current.Phone),
		AddressLine: patch.CoalescePtr(req.AddressLine, current.AddressLine),
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVetNotFound
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *vetCommandsImpl) DeleteVet(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrVetNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrVetInUse
		}
		return err
	}
	return nil
}

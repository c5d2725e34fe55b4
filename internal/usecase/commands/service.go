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
	ErrServiceNotFound  = errs.New("service not found")
	ErrServiceInUse     = errs.New("service has dependent records")
	ErrDuplicateService = errs.New("service name already exists")
)

type ServiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.ServiceRecord) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.ServiceRecord) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ServiceCommands interface {
	CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type serviceCommandsImpl struct {
	repo      ServiceRepository
	readStore queries.ServiceReadStore
	pool      *pgxpool.Pool
}

func NewServiceCommands(repo ServiceRepository, readStore queries.ServiceReadStore, pool *pgxpool.Pool) ServiceCommands {
	return &serviceCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *serviceCommandsImpl) CreateService(ctx context.Context, req reqdto.CreateServiceRequest) (*queries.ServiceView, error) {
	rec := repository.ServiceRecord{
		Name:       req.Name,
		PricePence: req.PricePence,
		Active:     true,
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.Create(ctx, tx, rec)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateService
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *serviceCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, req reqdto.UpdateServiceRequest) (*queries.ServiceView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	rec := repository.ServiceRecord{
		Name:       patch.Coalesce(req.Name, current.Name),
		PricePence: patch.Coalesce(req.PricePence, current.PricePence),
		Active:     patch.Coalesce(req.Active, current.Active),
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrServiceNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrDuplicateService
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *serviceCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrServiceNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrServiceInUse
		}
		return err
	}
	return nil
}

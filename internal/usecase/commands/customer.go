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
	ErrCustomerNotFound = errs.New("customer not found")
	ErrCustomerInUse    = errs.New("customer has dependent records")
)

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.CustomerRecord, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.CustomerRecord, updatedBy uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, req reqdto.CreateCustomerRequest, actorID uuid.UUID) (*queries.CustomerView, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest, actorID uuid.UUID) (*queries.CustomerView, error)
	DeleteCustomer(ctx context.Context, id uuid.UUID) error
}

type customerCommandsImpl struct {
	repo      CustomerRepository
	readStore queries.CustomerReadStore
	pool      *pgxpool.Pool
}

func NewCustomerCommands(repo CustomerRepository, readStore queries.CustomerReadStore, pool *pgxpool.Pool) CustomerCommands {
	return &customerCommandsImpl{
		repo:      repo,
		readStore: readStore,
		pool:      pool,
	}
}

func (c *customerCommandsImpl) CreateCustomer(ctx context.Context, req reqdto.CreateCustomerRequest, actorID uuid.UUID) (*queries.CustomerView, error) {
	rec := repository.CustomerRecord{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		AddressLine:      req.AddressLine,
		Postcode:         req.Postcode,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Active:           true,
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		return c.repo.Create(ctx, tx, rec, actorID)
	})
	if err != nil {
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *customerCommandsImpl) UpdateCustomer(ctx context.Context, id uuid.UUID, req reqdto.UpdateCustomerRequest, actorID uuid.UUID) (*queries.CustomerView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	rec := repository.CustomerRecord{
		FirstName:        patch.Coalesce(req.FirstName, current.FirstName),
		LastName:         patch.Coalesce(req.LastName, current.LastName),
		Email:            patch.CoalescePtr(req.Email, current.Email),
		Phone:            patch.CoalescePtr(req.Phone, current.Phone),
		AddressLine:      patch.CoalescePtr(req.AddressLine, current.AddressLine),
		Postcode:         patch.CoalescePtr(req.Postcode, current.Postcode),
		EmergencyContact: patch.CoalescePtr(req.EmergencyContact, current.EmergencyContact),
		EmergencyPhone:   patch.CoalescePtr(req.EmergencyPhone, current.EmergencyPhone),
		Active:           patch.Coalesce(req.Active, current.Active),
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec, actorID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *customerCommandsImpl) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrCustomerNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return ErrCustomerInUse
		}
		return err
	}
	return nil
}

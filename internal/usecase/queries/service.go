package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PricePence int64     `json:"price_pence"`
	Price      string    `json:"price"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ServiceFilters struct {
	Active *bool
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, filters ServiceFilters) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListServices(ctx context.Context, filters ServiceFilters) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	svc, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (q *serviceQueriesImpl) ListServices(ctx context.Context, filters ServiceFilters) ([]*ServiceView, error) {
	return q.readStore.List(ctx, filters)
}

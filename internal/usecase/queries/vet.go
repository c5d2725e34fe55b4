package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVetNotFound = errs.New("vet not found")

type VetView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Practice    *string   `json:"practice,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	AddressLine *string   `json:"address_line,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VetView, error)
	List(ctx context.Context) ([]*VetView, error)
}

type VetQueries interface {
	GetVet(ctx context.Context, id uuid.UUID) (*VetView, error)
	ListVets(ctx context.Context) ([]*VetView, error)
}

type vetQueriesImpl struct {
	readStore VetReadStore
}

func NewVetQueries(readStore VetReadStore) VetQueries {
	return &vetQueriesImpl{readStore: readStore}
}

func (q *vetQueriesImpl) GetVet(ctx context.Context, id uuid.UUID) (*VetView, error) {
	vet, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVetNotFound
		}
		return nil, err
	}
	return vet, nil
}

func (q *vetQueriesImpl) ListVets(ctx context.Context) ([]*VetView, error) {
	return q.readStore.List(ctx)
}

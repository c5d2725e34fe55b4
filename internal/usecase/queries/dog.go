package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDogNotFound = errs.New("dog not found")

type DogView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	VetID        *uuid.UUID `json:"vet_id,omitempty"`
	VetName      *string    `json:"vet_name,omitempty"`
	Name         string     `json:"name"`
	Breed        *string    `json:"breed,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type DogFilters struct {
	CustomerID *uuid.UUID
	Active     *bool
}

type DogReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DogView, error)
	List(ctx context.Context, filters DogFilters) ([]*DogView, error)
}

type DogQueries interface {
	GetDog(ctx context.Context, id uuid.UUID) (*DogView, error)
	ListDogs(ctx context.Context, filters DogFilters) ([]*DogView, error)
}

type dogQueriesImpl struct {
	readStore DogReadStore
}

func NewDogQueries(readStore DogReadStore) DogQueries {
	return &dogQueriesImpl{readStore: readStore}
}

func (q *dogQueriesImpl) GetDog(ctx context.Context, id uuid.UUID) (*DogView, error) {
	dog, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}
	return dog, nil
}

func (q *dogQueriesImpl) ListDogs(ctx context.Context, filters DogFilters) ([]*DogView, error) {
	return q.readStore.List(ctx, filters)
}

package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errs.New("customer not found")

type CustomerView struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	AddressLine      *string   `json:"address_line,omitempty"`
	Postcode         *string   `json:"postcode,omitempty"`
	EmergencyContact *string   `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string   `json:"emergency_phone,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type CustomerFilters struct {
	Active *bool
	Search *string
}

type CustomerReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, filters CustomerFilters) ([]*CustomerView, error)
}

type CustomerQueries interface {
	GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	ListCustomers(ctx context.Context, filters CustomerFilters) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	readStore CustomerReadStore
}

func NewCustomerQueries(readStore CustomerReadStore) CustomerQueries {
	return &customerQueriesImpl{readStore: readStore}
}

func (q *customerQueriesImpl) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	customer, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (q *customerQueriesImpl) ListCustomers(ctx context.Context, filters CustomerFilters) ([]*CustomerView, error) {
	return q.readStore.List(ctx, filters)
}

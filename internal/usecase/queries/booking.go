package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingView struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	DogID        uuid.UUID  `json:"dog_id"`
	DogName      string     `json:"dog_name"`
	ServiceID    uuid.UUID  `json:"service_id"`
	ServiceName  string     `json:"service_name"`
	Date         time.Time  `json:"date"`
	TimeOfDay    string     `json:"time_of_day"`
	PricePence   int64      `json:"price_pence"`
	Notes        *string    `json:"notes,omitempty"`
	AssignedTo   *uuid.UUID `json:"assigned_to,omitempty"`
	AssigneeName *string    `json:"assignee_name,omitempty"`
	InvoiceID    *uuid.UUID `json:"invoice_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BookingFilters narrows listings; zero value means no constraint.
type BookingFilters struct {
	CustomerID *uuid.UUID
	AssignedTo *uuid.UUID
	DateFrom   *time.Time
	DateTo     *time.Time
	Uninvoiced bool
}

// BookingReadStore lists bookings most recent day first; within a day,
// earliest time first.
type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filters BookingFilters) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, filters BookingFilters) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filters BookingFilters) ([]*BookingView, error) {
	return q.readStore.List(ctx, filters)
}

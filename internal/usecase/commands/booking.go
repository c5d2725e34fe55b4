package commands

import (
	"context"

	"pawbook/internal/domain/booking"
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
	ErrBookingNotFound    = errs.New("booking not found")
	ErrBookingRelation    = errs.New("booking references a missing record")
	ErrBookingInvoiced    = errs.New("booking already belongs to an invoice")
	ErrBookingBadSchedule = errs.New("invalid booking schedule")
)

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.BookingRecord, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.BookingRecord, updatedBy uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, actorID uuid.UUID) ([]*queries.BookingView, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, actorID uuid.UUID) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

type bookingCommandsImpl struct {
	repo         BookingRepository
	readStore    queries.BookingReadStore
	serviceStore queries.ServiceReadStore
	pool         *pgxpool.Pool
}

func NewBookingCommands(
	repo BookingRepository,
	readStore queries.BookingReadStore,
	serviceStore queries.ServiceReadStore,
	pool *pgxpool.Pool,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:         repo,
		readStore:    readStore,
		serviceStore: serviceStore,
		pool:         pool,
	}
}

// CreateBooking writes the booking and, when repeat_weeks is set, the whole
// weekly series in a single transaction. Either every booking in the series
// exists afterwards or none do.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, actorID uuid.UUID) ([]*queries.BookingView, error) {
	firstDate, err := reqdto.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingBadSchedule)
	}

	timeOfDay, err := booking.ParseTimeOfDay(req.TimeOfDay)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingBadSchedule)
	}

	dates, err := booking.ExpandSeries(firstDate, req.RepeatWeeks)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingBadSchedule)
	}

	if _, err := c.serviceStore.FindByID(ctx, req.ServiceID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingRelation
		}
		return nil, err
	}

	ids, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) ([]uuid.UUID, error) {
		created := make([]uuid.UUID, 0, len(dates))
		for _, date := range dates {
			id, err := c.repo.Create(ctx, tx, repository.BookingRecord{
				CustomerID: req.CustomerID,
				DogID:      req.DogID,
				ServiceID:  req.ServiceID,
				Date:       date,
				TimeOfDay:  timeOfDay,
				Notes:      req.Notes,
				AssignedTo: req.AssignedTo,
			}, actorID)
			if err != nil {
				return nil, err
			}
			created = append(created, id)
		}
		return created, nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, ErrBookingRelation
		}
		return nil, err
	}

	views := make([]*queries.BookingView, 0, len(ids))
	for _, id := range ids {
		view, err := c.readStore.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (c *bookingCommandsImpl) UpdateBooking(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookingRequest, actorID uuid.UUID) (*queries.BookingView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if current.InvoiceID != nil {
		return nil, ErrBookingInvoiced
	}

	date := current.Date
	if req.Date != nil {
		date, err = reqdto.ParseDate(*req.Date)
		if err != nil {
			return nil, errs.Mark(err, ErrBookingBadSchedule)
		}
	}

	timeOfDay := current.TimeOfDay
	if req.TimeOfDay != nil {
		timeOfDay, err = booking.ParseTimeOfDay(*req.TimeOfDay)
		if err != nil {
			return nil, errs.Mark(err, ErrBookingBadSchedule)
		}
	}

	rec := repository.BookingRecord{
		CustomerID: patch.Coalesce(req.CustomerID, current.CustomerID),
		DogID:      patch.Coalesce(req.DogID, current.DogID),
		ServiceID:  patch.Coalesce(req.ServiceID, current.ServiceID),
		Date:       date,
		TimeOfDay:  timeOfDay,
		Notes:      patch.CoalescePtr(req.Notes, current.Notes),
		AssignedTo: patch.CoalescePtr(req.AssignedTo, current.AssignedTo),
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec, actorID)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrBookingRelation
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	if current.InvoiceID != nil {
		return ErrBookingInvoiced
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}

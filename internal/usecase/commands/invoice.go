package commands

import (
	"context"
	"time"

	"pawbook/internal/domain/invoice"
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
	ErrInvoiceNotFound  = errs.New("invoice not found")
	ErrInvoiceCustomer  = errs.New("invoice customer not found")
	ErrDuplicateInvoice = errs.New("invoice already exists for this customer and period")
	ErrInvoicePeriod    = errs.New("invalid invoice period")
)

type InvoiceRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec repository.InvoiceRecord, createdBy uuid.UUID) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec repository.InvoiceRecord, updatedBy uuid.UUID) error
	LinkBookings(ctx context.Context, tx db.DBTX, invoiceID uuid.UUID, bookingIDs []uuid.UUID) error
	UnlinkBookings(ctx context.Context, tx db.DBTX, invoiceID uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

// InvoiceBookingSource matches the uninvoiced bookings an invoice will claim.
type InvoiceBookingSource interface {
	FindForInvoice(ctx context.Context, tx db.DBTX, customerID uuid.UUID, periodStart, periodEnd time.Time) ([]repository.InvoiceableBooking, error)
}

type InvoiceCommands interface {
	GenerateInvoice(ctx context.Context, req reqdto.GenerateInvoiceRequest, actorID uuid.UUID) (*queries.InvoiceView, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, req reqdto.UpdateInvoiceRequest, actorID uuid.UUID) (*queries.InvoiceView, error)
	RegenerateInvoice(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*queries.InvoiceView, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
}

type invoiceCommandsImpl struct {
	repo          InvoiceRepository
	bookingSource InvoiceBookingSource
	readStore     queries.InvoiceReadStore
	customerStore queries.CustomerReadStore
	generator     *invoice.Generator
	pool          *pgxpool.Pool
}

func NewInvoiceCommands(
	repo InvoiceRepository,
	bookingSource InvoiceBookingSource,
	readStore queries.InvoiceReadStore,
	customerStore queries.CustomerReadStore,
	generator *invoice.Generator,
	pool *pgxpool.Pool,
) InvoiceCommands {
	return &invoiceCommandsImpl{
		repo:          repo,
		bookingSource: bookingSource,
		readStore:     readStore,
		customerStore: customerStore,
		generator:     generator,
		pool:          pool,
	}
}

// GenerateInvoice claims every uninvoiced booking of the customer inside
// the period and persists the invoice with its links in one transaction.
// A customer with no matching bookings still gets a zero-total invoice.
func (c *invoiceCommandsImpl) GenerateInvoice(ctx context.Context, req reqdto.GenerateInvoiceRequest, actorID uuid.UUID) (*queries.InvoiceView, error) {
	periodStart, periodEnd, err := parsePeriod(req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	if _, err := c.customerStore.FindByID(ctx, req.CustomerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceCustomer
		}
		return nil, err
	}

	id, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (uuid.UUID, error) {
		matched, err := c.bookingSource.FindForInvoice(ctx, tx, req.CustomerID, periodStart, periodEnd)
		if err != nil {
			return uuid.Nil, err
		}

		draft, err := c.generator.BuildDraft(req.CustomerID, periodStart, periodEnd, toLines(matched), req.DiscountPence)
		if err != nil {
			return uuid.Nil, err
		}

		invoiceID, err := c.repo.Create(ctx, tx, draftToRecord(draft), actorID)
		if err != nil {
			return uuid.Nil, err
		}

		return invoiceID, c.repo.LinkBookings(ctx, tx, invoiceID, lineIDs(draft.Lines))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateInvoice
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

func (c *invoiceCommandsImpl) UpdateInvoice(ctx context.Context, id uuid.UUID, req reqdto.UpdateInvoiceRequest, actorID uuid.UUID) (*queries.InvoiceView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	dateDue := current.DateDue
	if req.DateDue != nil {
		dateDue, err = reqdto.ParseDate(*req.DateDue)
		if err != nil {
			return nil, errs.Wrap(err, "invalid due date")
		}
	}

	datePaid := current.DatePaid
	if req.DatePaid != nil {
		if *req.DatePaid == "" {
			datePaid = nil
		} else {
			parsed, err := reqdto.ParseDate(*req.DatePaid)
			if err != nil {
				return nil, errs.Wrap(err, "invalid paid date")
			}
			datePaid = &parsed
		}
	}

	discount := patch.Coalesce(req.DiscountPence, current.DiscountPence)
	rec := repository.InvoiceRecord{
		Reference:     current.Reference,
		CustomerID:    current.CustomerID,
		PeriodStart:   current.PeriodStart,
		PeriodEnd:     current.PeriodEnd,
		DateIssued:    current.DateIssued,
		DateDue:       dateDue,
		SubtotalPence: current.SubtotalPence,
		DiscountPence: discount,
		TotalPence:    current.SubtotalPence - discount,
		DatePaid:      datePaid,
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		return struct{}{}, c.repo.Update(ctx, tx, id, rec, actorID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

// RegenerateInvoice releases the invoice's bookings, re-matches the period
// and rewrites totals, all in one transaction. The reference is derived from
// customer and period, so it stays stable across regenerations.
func (c *invoiceCommandsImpl) RegenerateInvoice(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (*queries.InvoiceView, error) {
	current, err := c.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}

	_, err = shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.repo.UnlinkBookings(ctx, tx, id); err != nil {
			return struct{}{}, err
		}

		matched, err := c.bookingSource.FindForInvoice(ctx, tx, current.CustomerID, current.PeriodStart, current.PeriodEnd)
		if err != nil {
			return struct{}{}, err
		}

		draft, err := c.generator.BuildDraft(current.CustomerID, current.PeriodStart, current.PeriodEnd, toLines(matched), current.DiscountPence)
		if err != nil {
			return struct{}{}, err
		}

		rec := draftToRecord(draft)
		rec.DatePaid = current.DatePaid
		if err := c.repo.Update(ctx, tx, id, rec, actorID); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.repo.LinkBookings(ctx, tx, id, lineIDs(draft.Lines))
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return c.readStore.FindByID(ctx, id)
}

// DeleteInvoice releases the linked bookings before removing the row so the
// bookings can be invoiced again. A missing invoice is reported before any
// transaction is opened.
func (c *invoiceCommandsImpl) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	if _, err := c.readStore.FindByID(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}

	_, err := shared.RunInTx(ctx, c.pool, func(tx db.DBTX) (struct{}, error) {
		if err := c.repo.UnlinkBookings(ctx, tx, id); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, c.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrInvoiceNotFound
		}
		return err
	}
	return nil
}

func parsePeriod(start, end string) (time.Time, time.Time, error) {
	periodStart, err := reqdto.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvoicePeriod)
	}
	periodEnd, err := reqdto.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Mark(err, ErrInvoicePeriod)
	}
	if periodEnd.Before(periodStart) {
		return time.Time{}, time.Time{}, ErrInvoicePeriod
	}
	return periodStart, periodEnd, nil
}

func toLines(matched []repository.InvoiceableBooking) []invoice.Line {
	lines := make([]invoice.Line, len(matched))
	for i, b := range matched {
		lines[i] = invoice.Line{
			BookingID:   b.ID,
			Date:        b.Date,
			TimeOfDay:   b.TimeOfDay,
			ServiceName: b.ServiceName,
			PricePence:  b.PricePence,
		}
	}
	return lines
}

func lineIDs(lines []invoice.Line) []uuid.UUID {
	ids := make([]uuid.UUID, len(lines))
	for i, l := range lines {
		ids[i] = l.BookingID
	}
	return ids
}

func draftToRecord(d invoice.Draft) repository.InvoiceRecord {
	return repository.InvoiceRecord{
		Reference:     d.Reference,
		CustomerID:    d.CustomerID,
		PeriodStart:   d.PeriodStart,
		PeriodEnd:     d.PeriodEnd,
		DateIssued:    d.DateIssued,
		DateDue:       d.DateDue,
		SubtotalPence: d.SubtotalPence,
		DiscountPence: d.DiscountPence,
		TotalPence:    d.TotalPence,
	}
}

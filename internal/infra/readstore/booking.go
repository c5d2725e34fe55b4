package readstore

import (
	"context"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingSelect = `
	SELECT b.id, b.customer_id, c.first_name || ' ' || c.last_name,
	       b.dog_id, d.name, b.service_id, s.name,
	       b.date, b.time_of_day, s.price_pence, b.notes, b.assigned_to, u.name,
	       b.invoice_id, b.created_at, b.updated_at
	FROM bookings b
	JOIN customers c ON c.id = b.customer_id
	JOIN dogs d ON d.id = b.dog_id
	JOIN services s ON s.id = b.service_id
	LEFT JOIN users u ON u.id = b.assigned_to`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingSelect+` WHERE b.id = $1`, id)

	view, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

// List returns bookings most recent day first, earliest time first within
// a day.
func (r *BookingReadStore) List(ctx context.Context, filters queries.BookingFilters) ([]*queries.BookingView, error) {
	query := bookingSelect + ` WHERE 1=1`
	args := []any{}

	if filters.CustomerID != nil {
		args = append(args, *filters.CustomerID)
		query += ` AND b.customer_id = $` + argn(len(args))
	}
	if filters.DateFrom != nil {
		args = append(args, pgconv.DateToPgtype(*filters.DateFrom))
		query += ` AND b.date >= $` + argn(len(args))
	}
	if filters.DateTo != nil {
		args = append(args, pgconv.DateToPgtype(*filters.DateTo))
		query += ` AND b.date <= $` + argn(len(args))
	}
	if filters.AssignedTo != nil {
		args = append(args, *filters.AssignedTo)
		query += ` AND b.assigned_to = $` + argn(len(args))
	}
	if filters.Uninvoiced {
		query += ` AND b.invoice_id IS NULL`
	}
	query += ` ORDER BY b.date DESC, b.time_of_day ASC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBooking(row rowScanner) (*queries.BookingView, error) {
	var v queries.BookingView
	var date pgtype.Date
	var timeOfDay pgtype.Time
	var notes, assigneeName pgtype.Text
	var assignedTo, invoiceID pgtype.UUID
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.CustomerID, &v.CustomerName, &v.DogID, &v.DogName,
		&v.ServiceID, &v.ServiceName, &date, &timeOfDay, &v.PricePence, &notes,
		&assignedTo, &assigneeName, &invoiceID, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	v.Date = pgconv.DateFromPgtype(date)
	v.TimeOfDay = pgconv.TimeOfDayFromPgtype(timeOfDay)
	v.Notes = pgconv.StringPtrFromPgtype(notes)
	v.AssignedTo = pgconv.UUIDPtrFromPgtype(assignedTo)
	v.AssigneeName = pgconv.StringPtrFromPgtype(assigneeName)
	v.InvoiceID = pgconv.UUIDPtrFromPgtype(invoiceID)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &v, nil
}

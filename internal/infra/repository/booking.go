package repository

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRecord struct {
	CustomerID uuid.UUID
	DogID      uuid.UUID
	ServiceID  uuid.UUID
	Date       time.Time
	TimeOfDay  string
	Notes      *string
	AssignedTo *uuid.UUID
}

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, rec BookingRecord, createdBy uuid.UUID) (uuid.UUID, error) {
	timeOfDay, err := pgconv.TimeOfDayToPgtype(rec.TimeOfDay)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("invalid booking time", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (customer_id, dog_id, service_id, date, time_of_day, notes, assigned_to, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id`,
		rec.CustomerID, rec.DogID, rec.ServiceID,
		pgconv.DateToPgtype(rec.Date), timeOfDay,
		pgconv.StringPtrToPgtype(rec.Notes), pgconv.UUIDPtrToPgtype(rec.AssignedTo), createdBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec BookingRecord, updatedBy uuid.UUID) error {
	timeOfDay, err := pgconv.TimeOfDayToPgtype(rec.TimeOfDay)
	if err != nil {
		return infra.WrapRepoErr("invalid booking time", err)
	}

	tag, err := tx.Exec(ctx, `
		UPDATE bookings
		SET customer_id = $2, dog_id = $3, service_id = $4, date = $5, time_of_day = $6,
		    notes = $7, assigned_to = $8, updated_by = $9, updated_at = now()
		WHERE id = $1`,
		id, rec.CustomerID, rec.DogID, rec.ServiceID,
		pgconv.DateToPgtype(rec.Date), timeOfDay,
		pgconv.StringPtrToPgtype(rec.Notes), pgconv.UUIDPtrToPgtype(rec.AssignedTo), updatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindForInvoice returns the customer's uninvoiced bookings inside the
// period, locked for update so concurrent invoice generation cannot claim
// the same rows. Prices are read from the currently linked service, so a
// service price edit is reflected the next time an invoice is generated
// or regenerated.
func (r *BookingRepository) FindForInvoice(ctx context.Context, tx db.DBTX, customerID uuid.UUID, periodStart, periodEnd time.Time) ([]InvoiceableBooking, error) {
	rows, err := tx.Query(ctx, `
		SELECT b.id, b.date, b.time_of_day, s.name, s.price_pence
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.customer_id = $1
		  AND b.date >= $2 AND b.date <= $3
		  AND b.invoice_id IS NULL
		ORDER BY b.date ASC, b.time_of_day ASC
		FOR UPDATE OF b`,
		customerID, pgconv.DateToPgtype(periodStart), pgconv.DateToPgtype(periodEnd))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings for invoice", err)
	}
	defer rows.Close()

	var result []InvoiceableBooking
	for rows.Next() {
		var b InvoiceableBooking
		var date pgtype.Date
		var timeOfDay pgtype.Time

		if err := rows.Scan(&b.ID, &date, &timeOfDay, &b.ServiceName, &b.PricePence); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoiceable booking", err)
		}
		b.Date = pgconv.DateFromPgtype(date)
		b.TimeOfDay = pgconv.TimeOfDayFromPgtype(timeOfDay)
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoiceable bookings", err)
	}
	return result, nil
}

type InvoiceableBooking struct {
	ID          uuid.UUID
	Date        time.Time
	TimeOfDay   string
	ServiceName string
	PricePence  int64
}

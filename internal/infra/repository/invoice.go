package repository

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/infra/db"
	"pawbook/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InvoiceRecord struct {
	Reference     string
	CustomerID    uuid.UUID
	PeriodStart   time.Time
	PeriodEnd     time.Time
	DateIssued    time.Time
	DateDue       time.Time
	SubtotalPence int64
	DiscountPence int64
	TotalPence    int64
	DatePaid      *time.Time
}

type InvoiceRepository struct{}

func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{}
}

func (r *InvoiceRepository) Create(ctx context.Context, tx db.DBTX, rec InvoiceRecord, createdBy uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO invoices (reference, customer_id, period_start, period_end, date_issued, date_due,
		                      subtotal_pence, discount_pence, total_pence, date_paid, created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING id`,
		rec.Reference, rec.CustomerID,
		pgconv.DateToPgtype(rec.PeriodStart), pgconv.DateToPgtype(rec.PeriodEnd),
		pgconv.DateToPgtype(rec.DateIssued), pgconv.DateToPgtype(rec.DateDue),
		rec.SubtotalPence, rec.DiscountPence, rec.TotalPence, pgconv.DatePtrToPgtype(rec.DatePaid), createdBy,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create invoice", err)
	}
	return id, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rec InvoiceRecord, updatedBy uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE invoices
		SET reference = $2, customer_id = $3, period_start = $4, period_end = $5,
		    date_issued = $6, date_due = $7, subtotal_pence = $8, discount_pence = $9,
		    total_pence = $10, date_paid = $11, updated_by = $12, updated_at = now()
		WHERE id = $1`,
		id, rec.Reference, rec.CustomerID,
		pgconv.DateToPgtype(rec.PeriodStart), pgconv.DateToPgtype(rec.PeriodEnd),
		pgconv.DateToPgtype(rec.DateIssued), pgconv.DateToPgtype(rec.DateDue),
		rec.SubtotalPence, rec.DiscountPence, rec.TotalPence, pgconv.DatePtrToPgtype(rec.DatePaid), updatedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

// LinkBookings claims the given bookings for the invoice.
func (r *InvoiceRepository) LinkBookings(ctx context.Context, tx db.DBTX, invoiceID uuid.UUID, bookingIDs []uuid.UUID) error {
	if len(bookingIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `UPDATE bookings SET invoice_id = $1 WHERE id = ANY($2)`, invoiceID, bookingIDs)
	if err != nil {
		return infra.WrapRepoErr("failed to link bookings to invoice", err)
	}
	return nil
}

// UnlinkBookings releases every booking held by the invoice so the rows
// can be re-invoiced later.
func (r *InvoiceRepository) UnlinkBookings(ctx context.Context, tx db.DBTX, invoiceID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE bookings SET invoice_id = NULL WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return infra.WrapRepoErr("failed to unlink bookings from invoice", err)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invoice not found", nil, infra.KindNotFound)
	}
	return nil
}

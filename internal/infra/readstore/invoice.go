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

type InvoiceReadStore struct {
	db db.DBTX
}

func NewInvoiceReadStore(db db.DBTX) *InvoiceReadStore {
	return &InvoiceReadStore{db: db}
}

func (r *InvoiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.InvoiceView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT i.id, i.reference, i.customer_id, c.first_name || ' ' || c.last_name,
		       i.period_start, i.period_end, i.date_issued, i.date_due,
		       i.subtotal_pence, i.discount_pence, i.total_pence, i.date_paid,
		       i.created_at, i.updated_at
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1`, id)

	var v queries.InvoiceView
	var periodStart, periodEnd, dateIssued, dateDue, datePaid pgtype.Date
	var createdAt, updatedAt pgtype.Timestamptz

	err := row.Scan(&v.ID, &v.Reference, &v.CustomerID, &v.CustomerName,
		&periodStart, &periodEnd, &dateIssued, &dateDue,
		&v.SubtotalPence, &v.DiscountPence, &v.TotalPence, &datePaid,
		&createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invoice not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find invoice by ID", err)
	}

	v.PeriodStart = pgconv.DateFromPgtype(periodStart)
	v.PeriodEnd = pgconv.DateFromPgtype(periodEnd)
	v.DateIssued = pgconv.DateFromPgtype(dateIssued)
	v.DateDue = pgconv.DateFromPgtype(dateDue)
	v.DatePaid = pgconv.DatePtrFromPgtype(datePaid)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Lines = lines
	return &v, nil
}

// findLines returns the invoice's bookings in document order, oldest day
// first.
func (r *InvoiceReadStore) findLines(ctx context.Context, invoiceID uuid.UUID) ([]queries.InvoiceLineView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT b.id, b.date, b.time_of_day, s.name, s.price_pence
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		WHERE b.invoice_id = $1
		ORDER BY b.date ASC, b.time_of_day ASC`, invoiceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoice lines", err)
	}
	defer rows.Close()

	lines := []queries.InvoiceLineView{}
	for rows.Next() {
		var l queries.InvoiceLineView
		var date pgtype.Date
		var timeOfDay pgtype.Time

		if err := rows.Scan(&l.BookingID, &date, &timeOfDay, &l.ServiceName, &l.PricePence); err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice line row", err)
		}
		l.Date = pgconv.DateFromPgtype(date)
		l.TimeOfDay = pgconv.TimeOfDayFromPgtype(timeOfDay)
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoice line rows", err)
	}
	return lines, nil
}

func (r *InvoiceReadStore) List(ctx context.Context, filters queries.InvoiceFilters) ([]*queries.InvoiceListItem, error) {
	query := `
		SELECT i.id, i.reference, i.customer_id, c.first_name || ' ' || c.last_name,
		       i.period_start, i.period_end, i.date_issued, i.date_due, i.total_pence, i.date_paid
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE 1=1`
	args := []any{}

	if filters.CustomerID != nil {
		args = append(args, *filters.CustomerID)
		query += ` AND i.customer_id = $` + argn(len(args))
	}
	if filters.Paid != nil {
		if *filters.Paid {
			query += ` AND i.date_paid IS NOT NULL`
		} else {
			query += ` AND i.date_paid IS NULL`
		}
	}
	query += ` ORDER BY i.date_issued DESC, i.reference`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list invoices", err)
	}
	defer rows.Close()

	var result []*queries.InvoiceListItem
	for rows.Next() {
		var item queries.InvoiceListItem
		var periodStart, periodEnd, dateIssued, dateDue, datePaid pgtype.Date

		err := rows.Scan(&item.ID, &item.Reference, &item.CustomerID, &item.CustomerName,
			&periodStart, &periodEnd, &dateIssued, &dateDue, &item.TotalPence, &datePaid)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan invoice row", err)
		}

		item.PeriodStart = pgconv.DateFromPgtype(periodStart)
		item.PeriodEnd = pgconv.DateFromPgtype(periodEnd)
		item.DateIssued = pgconv.DateFromPgtype(dateIssued)
		item.DateDue = pgconv.DateFromPgtype(dateDue)
		item.DatePaid = pgconv.DatePtrFromPgtype(datePaid)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read invoice rows", err)
	}
	return result, nil
}

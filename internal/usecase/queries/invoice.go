package queries

import (
	"context"
	"time"

	"pawbook/internal/infra"
	"pawbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

type InvoiceLineView struct {
	BookingID   uuid.UUID `json:"booking_id"`
	Date        time.Time `json:"date"`
	TimeOfDay   string    `json:"time_of_day"`
	ServiceName string    `json:"service_name"`
	PricePence  int64     `json:"price_pence"`
}

type InvoiceView struct {
	ID            uuid.UUID         `json:"id"`
	Reference     string            `json:"reference"`
	CustomerID    uuid.UUID         `json:"customer_id"`
	CustomerName  string            `json:"customer_name"`
	PeriodStart   time.Time         `json:"period_start"`
	PeriodEnd     time.Time         `json:"period_end"`
	DateIssued    time.Time         `json:"date_issued"`
	DateDue       time.Time         `json:"date_due"`
	SubtotalPence int64             `json:"subtotal_pence"`
	DiscountPence int64             `json:"discount_pence"`
	TotalPence    int64             `json:"total_pence"`
	DatePaid      *time.Time        `json:"date_paid,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	Lines         []InvoiceLineView `json:"lines"`
}

type InvoiceListItem struct {
	ID           uuid.UUID  `json:"id"`
	Reference    string     `json:"reference"`
	CustomerID   uuid.UUID  `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	PeriodStart  time.Time  `json:"period_start"`
	PeriodEnd    time.Time  `json:"period_end"`
	DateIssued   time.Time  `json:"date_issued"`
	DateDue      time.Time  `json:"date_due"`
	TotalPence   int64      `json:"total_pence"`
	DatePaid     *time.Time `json:"date_paid,omitempty"`
}

type InvoiceFilters struct {
	CustomerID *uuid.UUID
	Paid       *bool
}

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	List(ctx context.Context, filters InvoiceFilters) ([]*InvoiceListItem, error)
}

type InvoiceQueries interface {
	GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error)
	ListInvoices(ctx context.Context, filters InvoiceFilters) ([]*InvoiceListItem, error)
}

type invoiceQueriesImpl struct {
	readStore InvoiceReadStore
}

func NewInvoiceQueries(readStore InvoiceReadStore) InvoiceQueries {
	return &invoiceQueriesImpl{readStore: readStore}
}

func (q *invoiceQueriesImpl) GetInvoice(ctx context.Context, id uuid.UUID) (*InvoiceView, error) {
	inv, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (q *invoiceQueriesImpl) ListInvoices(ctx context.Context, filters InvoiceFilters) ([]*InvoiceListItem, error) {
	return q.readStore.List(ctx, filters)
}

package response

import (
	"time"

	"pawbook/internal/pkg/money"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type InvoiceLineResponse struct {
	BookingID   uuid.UUID `json:"bookingId"`
	Date        string    `json:"date"`
	TimeOfDay   string    `json:"timeOfDay"`
	ServiceName string    `json:"serviceName"`
	PricePence  int64     `json:"pricePence"`
	Price       string    `json:"price"`
}

type InvoiceResponse struct {
	ID            uuid.UUID             `json:"id"`
	Reference     string                `json:"reference"`
	CustomerID    uuid.UUID             `json:"customerId"`
	CustomerName  string                `json:"customerName"`
	PeriodStart   string                `json:"periodStart"`
	PeriodEnd     string                `json:"periodEnd"`
	DateIssued    string                `json:"dateIssued"`
	DateDue       string                `json:"dateDue"`
	SubtotalPence int64                 `json:"subtotalPence"`
	Subtotal      string                `json:"subtotal"`
	DiscountPence int64                 `json:"discountPence"`
	Discount      string                `json:"discount"`
	TotalPence    int64                 `json:"totalPence"`
	Total         string                `json:"total"`
	DatePaid      *string               `json:"datePaid,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	Lines         []InvoiceLineResponse `json:"lines"`
}

type InvoiceListResponse struct {
	ID           uuid.UUID `json:"id"`
	Reference    string    `json:"reference"`
	CustomerID   uuid.UUID `json:"customerId"`
	CustomerName string    `json:"customerName"`
	PeriodStart  string    `json:"periodStart"`
	PeriodEnd    string    `json:"periodEnd"`
	DateIssued   string    `json:"dateIssued"`
	DateDue      string    `json:"dateDue"`
	TotalPence   int64     `json:"totalPence"`
	Total        string    `json:"total"`
	DatePaid     *string   `json:"datePaid,omitempty"`
}

const invoiceDateLayout = "2006-01-02"

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(invoiceDateLayout)
	return &s
}

func FromInvoiceView(view *queries.InvoiceView) *InvoiceResponse {
	var resp InvoiceResponse
	_ = copier.Copy(&resp, view)
	resp.PeriodStart = view.PeriodStart.Format(invoiceDateLayout)
	resp.PeriodEnd = view.PeriodEnd.Format(invoiceDateLayout)
	resp.DateIssued = view.DateIssued.Format(invoiceDateLayout)
	resp.DateDue = view.DateDue.Format(invoiceDateLayout)
	resp.Subtotal = money.Format(view.SubtotalPence)
	resp.Discount = money.Format(view.DiscountPence)
	resp.Total = money.Format(view.TotalPence)
	resp.DatePaid = formatDatePtr(view.DatePaid)

	resp.Lines = make([]InvoiceLineResponse, len(view.Lines))
	for i, l := range view.Lines {
		resp.Lines[i] = InvoiceLineResponse{
			BookingID:   l.BookingID,
			Date:        l.Date.Format(invoiceDateLayout),
			TimeOfDay:   l.TimeOfDay,
			ServiceName: l.ServiceName,
			PricePence:  l.PricePence,
			Price:       money.Format(l.PricePence),
		}
	}
	return &resp
}

func FromInvoiceListItem(item *queries.InvoiceListItem) *InvoiceListResponse {
	var resp InvoiceListResponse
	_ = copier.Copy(&resp, item)
	resp.PeriodStart = item.PeriodStart.Format(invoiceDateLayout)
	resp.PeriodEnd = item.PeriodEnd.Format(invoiceDateLayout)
	resp.DateIssued = item.DateIssued.Format(invoiceDateLayout)
	resp.DateDue = item.DateDue.Format(invoiceDateLayout)
	resp.Total = money.Format(item.TotalPence)
	resp.DatePaid = formatDatePtr(item.DatePaid)
	return &resp
}

func FromInvoiceListItems(items []*queries.InvoiceListItem) []*InvoiceListResponse {
	result := make([]*InvoiceListResponse, len(items))
	for i, item := range items {
		result[i] = FromInvoiceListItem(item)
	}
	return result
}

package response

import (
	"time"

	"pawbook/internal/pkg/money"
	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customerId"`
	CustomerName string     `json:"customerName"`
	DogID        uuid.UUID  `json:"dogId"`
	DogName      string     `json:"dogName"`
	ServiceID    uuid.UUID  `json:"serviceId"`
	ServiceName  string     `json:"serviceName"`
	Date         string     `json:"date"`
	TimeOfDay    string     `json:"timeOfDay"`
	PricePence   int64      `json:"pricePence"`
	Price        string     `json:"price"`
	Notes        *string    `json:"notes,omitempty"`
	AssignedTo   *uuid.UUID `json:"assignedTo,omitempty"`
	AssigneeName *string    `json:"assigneeName,omitempty"`
	InvoiceID    *uuid.UUID `json:"invoiceId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	resp.Date = view.Date.Format("2006-01-02")
	resp.Price = money.Format(view.PricePence)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	result := make([]*BookingResponse, len(views))
	for i, v := range views {
		result[i] = FromBookingView(v)
	}
	return result
}

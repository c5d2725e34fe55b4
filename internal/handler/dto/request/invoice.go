package request

import (
	"github.com/google/uuid"
)

type GenerateInvoiceRequest struct {
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	PeriodStart   string    `json:"period_start" binding:"required,datetime=2006-01-02"`
	PeriodEnd     string    `json:"period_end" binding:"required,datetime=2006-01-02"`
	DiscountPence int64     `json:"discount_pence,omitempty" binding:"omitempty,min=0"`
}

// UpdateInvoiceRequest applies only fields that are present. An explicit
// empty date_paid clears the paid date.
type UpdateInvoiceRequest struct {
	DiscountPence *int64  `json:"discount_pence,omitempty" binding:"omitempty,min=0"`
	DatePaid      *string `json:"date_paid,omitempty" binding:"omitempty,datetime=2006-01-02"`
	DateDue       *string `json:"date_due,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

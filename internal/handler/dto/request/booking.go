package request

import (
	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	CustomerID uuid.UUID  `json:"customer_id" binding:"required"`
	DogID      uuid.UUID  `json:"dog_id" binding:"required"`
	ServiceID  uuid.UUID  `json:"service_id" binding:"required"`
	Date       string     `json:"date" binding:"required,datetime=2006-01-02"`
	TimeOfDay  string     `json:"time_of_day" binding:"required,datetime=15:04"`
	Notes      *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`

	// RepeatWeeks extends the booking into a weekly series: the given
	// number of further bookings, each seven days after the last.
	RepeatWeeks int `json:"repeat_weeks,omitempty" binding:"omitempty,min=0,max=52"`
}

type UpdateBookingRequest struct {
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	DogID      *uuid.UUID `json:"dog_id,omitempty"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty"`
	Date       *string    `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	TimeOfDay  *string    `json:"time_of_day,omitempty" binding:"omitempty,datetime=15:04"`
	Notes      *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
}

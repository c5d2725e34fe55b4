package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

type CreateDogRequest struct {
	CustomerID  uuid.UUID  `json:"customer_id" binding:"required"`
	VetID       *uuid.UUID `json:"vet_id,omitempty"`
	Name        string     `json:"name" binding:"required,max=100"`
	Breed       *string    `json:"breed,omitempty" binding:"omitempty,max=100"`
	DateOfBirth *string    `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
}

type UpdateDogRequest struct {
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"`
	VetID       *uuid.UUID `json:"vet_id,omitempty"`
	Name        *string    `json:"name,omitempty" binding:"omitempty,max=100"`
	Breed       *string    `json:"breed,omitempty" binding:"omitempty,max=100"`
	DateOfBirth *string    `json:"date_of_birth,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string    `json:"notes,omitempty" binding:"omitempty,max=2000"`
	Active      *bool      `json:"active,omitempty"`
}

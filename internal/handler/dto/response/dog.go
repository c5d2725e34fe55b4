package response

import (
	"time"

	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DogResponse struct {
	ID           uuid.UUID  `json:"id"`
	CustomerID   uuid.UUID  `json:"customerId"`
	CustomerName string     `json:"customerName"`
	VetID        *uuid.UUID `json:"vetId,omitempty"`
	VetName      *string    `json:"vetName,omitempty"`
	Name         string     `json:"name"`
	Breed        *string    `json:"breed,omitempty"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromDogView(view *queries.DogView) *DogResponse {
	var resp DogResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromDogViews(views []*queries.DogView) []*DogResponse {
	result := make([]*DogResponse, len(views))
	for i, v := range views {
		result[i] = FromDogView(v)
	}
	return result
}

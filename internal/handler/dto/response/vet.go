package response

import (
	"time"

	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VetResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Practice    *string   `json:"practice,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	AddressLine *string   `json:"addressLine,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromVetView(view *queries.VetView) *VetResponse {
	var resp VetResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromVetViews(views []*queries.VetView) []*VetResponse {
	result := make([]*VetResponse, len(views))
	for i, v := range views {
		result[i] = FromVetView(v)
	}
	return result
}

package response

import (
	"time"

	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerResponse struct {
	ID               uuid.UUID `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            *string   `json:"email,omitempty"`
	Phone            *string   `json:"phone,omitempty"`
	AddressLine      *string   `json:"addressLine,omitempty"`
	Postcode         *string   `json:"postcode,omitempty"`
	EmergencyContact *string   `json:"emergencyContact,omitempty"`
	EmergencyPhone   *string   `json:"emergencyPhone,omitempty"`
	Active           bool      `json:"active"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func FromCustomerView(view *queries.CustomerView) *CustomerResponse {
	var resp CustomerResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromCustomerViews(views []*queries.CustomerView) []*CustomerResponse {
	result := make([]*CustomerResponse, len(views))
	for i, v := range views {
		result[i] = FromCustomerView(v)
	}
	return result
}

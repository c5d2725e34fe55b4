package response

import (
	"time"

	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PricePence int64     `json:"pricePence"`
	Price      string    `json:"price"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(views))
	for i, v := range views {
		result[i] = FromServiceView(v)
	}
	return result
}

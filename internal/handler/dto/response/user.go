package response

import (
	"time"

	"pawbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"isActive"`
	LastSignIn *time.Time `json:"lastSignIn,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func FromUserView(view *queries.UserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromUserViews(views []*queries.UserView) []*UserResponse {
	result := make([]*UserResponse, len(views))
	for i, v := range views {
		result[i] = FromUserView(v)
	}
	return result
}

package response

import (
	"pawbook/internal/usecase/queries"
)

type LoginResponse struct {
	User *UserResponse `json:"user"`
}

func FromLogin(view *queries.UserView) *LoginResponse {
	return &LoginResponse{User: FromUserView(view)}
}

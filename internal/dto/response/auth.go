package response

import (
	"hotel-booking/internal/data/entity"
)

type UserResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type SignInResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}

func SignInToResponse(user *entity.User, session *entity.Session) SignInResponse {
	return SignInResponse{
		User:  UserToResponse(user),
		Token: session.Token,
	}
}

package response

import (
	"naryn-restaurants/internal/data/entity"
)

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Role     entity.UserRole `json:"role"`
}

// Helper converters
func LoginToResponse(user *entity.User, token string) LoginResponse {
	return LoginResponse{
		Token: token,
		User: UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Role:     user.Role,
		},
	}
}

package response

import (
	"shop-backend/internal/data/entity"
)

type RegisterResponse struct {
	NewUser UserResponse `json:"newUser"`
	Token   string       `json:"token"`
}

type LoginResponse struct {
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

// UserSummary is the minimal projection returned on login.
type UserSummary struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

func UserToSummary(user *entity.User) UserSummary {
	return UserSummary{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
}

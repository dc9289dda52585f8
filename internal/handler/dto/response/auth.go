package response

import (
	"studio-booking/internal/usecase/commands"
	"studio-booking/internal/usecase/queries"
)

type LoginResponse struct {
	UserID      string `json:"user_id"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func ToLoginResponse(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		UserID:      r.UserID.String(),
		Role:        r.Role.String(),
		AccessToken: r.AccessToken,
	}
}

func ToUserResponse(v *queries.AuthorizedUserView) UserResponse {
	return UserResponse{
		ID:       v.ID.String(),
		Email:    v.Email,
		Role:     v.Role,
		IsActive: v.IsActive,
	}
}

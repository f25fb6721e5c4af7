package dto

import "github.com/lavadero-app/lavadero-backend/internal/core/domain"

// UserResponse is the public view of an identity.
type UserResponse struct {
	UserID string `json:"id"`
	Name   string `json:"nombre"`
	Email  string `json:"email"`
	Role   string `json:"rol"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   string(u.Role),
	}
}

package dto

import (
	"time"

	"github.com/yuzuhara/survey-admin-api/internal/models"
)

// UserDTO is the public shape of a user; the password hash never leaves
// the service.
type UserDTO struct {
	ID        uint64              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Role      models.UserRole     `json:"role"`
	Status    models.EntityStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// ToUserDTO converts a user model to its response shape
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// LoginResponseDTO pairs the authenticated user with their bearer token
type LoginResponseDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

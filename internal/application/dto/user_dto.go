package dto

import (
	"time"

	"github.com/gestistock/wms-api/internal/domain/entity"
)

// CreateUserRequest body pour POST /api/utilisateurs.
type CreateUserRequest struct {
	Name  string `json:"nom" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// UserResponse opérateur en réponse.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nom"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"actif"`
	CreatedAt time.Time `json:"date_creation"`
}

// FromUser convertit l'entité en réponse.
func FromUser(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}

// FromUsers convertit une liste d'entités.
func FromUsers(list []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, FromUser(u))
	}
	return out
}

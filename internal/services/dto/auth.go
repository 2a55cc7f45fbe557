package dto

import (
	"time"

	"monprof_backend/internal/models"
)

type RegisterRequest struct {
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      models.UserRole `json:"role" binding:"required,oneof=parent tutor"`
	FirstName string          `json:"first_name" binding:"required"`
	LastName  string          `json:"last_name"`
	Phone     string          `json:"phone"`
	// CountryCode is the ISO-style code of an active country.
	CountryCode string `json:"country_code"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
}

type UserDTO struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	IsSuperuser bool            `json:"is_superuser,omitempty"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	Phone       string          `json:"phone,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		IsSuperuser: user.IsSuperuser,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Phone:       user.Phone,
		IsActive:    user.IsActive,
		CreatedAt:   user.CreatedAt,
	}
}

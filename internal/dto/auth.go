package dto

import (
	"time"

	"tracklytic/internal/models"
)

// RegisterRequest contains user registration data
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Username    string `json:"username" validate:"required,min=2,max=150"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	Age         int    `json:"age" validate:"omitempty,min=0,max=150"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries the refresh token when it is not sent as a cookie.
type RefreshTokenRequest struct {
	Refresh string `json:"refresh"`
}

// TokenResponse contains authentication tokens
type TokenResponse struct {
	Access           string    `json:"access"`
	Refresh          string    `json:"refresh"`
	TokenType        string    `json:"token_type"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Age         int        `json:"age,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewUserProfileResponse(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		Age:         user.Age,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}

package dto

import "github.com/yigit/clubhub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"a@x.io"`
	Password string `json:"password" binding:"required" example:"secret1"`
}

// RegisterRequest represents a registration. RegisterAs admin files an admin request
// unless the system has no users yet.
type RegisterRequest struct {
	Name       string      `json:"name" binding:"required,max=100" example:"Ada"`
	Email      string      `json:"email" binding:"required,email" example:"a@x.io"`
	Password   string      `json:"password" binding:"required,min=6,max=72" example:"secret1"`
	RegisterAs models.Role `json:"registerAs" binding:"required,oneof=member admin" example:"member" enums:"member,admin"`
	Reason     string      `json:"reason,omitempty" binding:"max=1000" example:"I run the chess club"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"604800"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Message string        `json:"message" example:"Login successful"`
	Token   TokenResponse `json:"token"`
	User    UserResponse  `json:"user"`
}

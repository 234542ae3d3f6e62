package api

import (
	userHttp "github.com/shuttercal/booking-backend/internal/user/http"
)

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response for POST /v1/auth/register.
type RegisterResponse struct {
	User userHttp.UserResponse `json:"user"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	User        userHttp.UserResponse `json:"user"`
}

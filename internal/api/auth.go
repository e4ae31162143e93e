package api

import "github.com/adiwijaya-dev/forum-api/internal/domain"

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type RegisterResponse struct {
	AddedUser domain.User `json:"addedUser"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

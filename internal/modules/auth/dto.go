package auth

import "starwars/internal/domain"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=120,excludes=@"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest accepts either the username or the email in Login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresIn   int64               `json:"expires_in"`
	User        domain.UserSnapshot `json:"user"`
}

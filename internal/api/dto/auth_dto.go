package dto

import "time"

// CredentialsRequest payload for registration and login, both roles.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse confirms account creation.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse standard response for login endpoints.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

package dto

import "time"

// TokenRequest carries client credentials for POST /auth/token.
type TokenRequest struct {
	ClientID     string `json:"clientID" binding:"required"`
	ClientSecret string `json:"clientSecret" binding:"required"`
}

// TokenResponse represents the response for a successfully issued token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

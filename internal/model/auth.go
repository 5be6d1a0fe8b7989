package model

import "time"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SessionClaims is the authenticated context attached to a request after the
// bearer token has been validated against the session registry.
type SessionClaims struct {
	SessionID string
	Email     string
}

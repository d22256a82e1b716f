package domain

import "time"

// TokenClaims represents the session token payload.
// Validity is fully determined by the signature and expiry at verification
// time; nothing is kept server-side beyond the revocation set consulted
// on validation.
type TokenClaims struct {
	Subject   string `json:"sub"`
	TokenID   string `json:"jti"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// IssuedToken is returned after successful issuance or refresh
type IssuedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordResetRequest represents a self-service password reset request.
// Ephemeral; never persisted.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

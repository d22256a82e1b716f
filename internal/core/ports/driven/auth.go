package driven

import "github.com/clavis-labs/authcore/internal/core/domain"

// AuthAdapter handles authentication cryptographic operations.
// This does NOT handle storage - use CredentialStore for persistence.
type AuthAdapter interface {
	// Password operations
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool

	// Token operations
	GenerateToken(claims *domain.TokenClaims) (string, error)
	ParseToken(token string) (*domain.TokenClaims, error)
}

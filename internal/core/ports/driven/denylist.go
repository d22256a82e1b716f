package driven

import (
	"context"
	"time"
)

// TokenDenylist records revoked token IDs until their natural expiry.
// Entries may be dropped once expiresAt has passed; the token engine
// rejects expired tokens regardless.
type TokenDenylist interface {
	// Revoke marks a token ID as revoked until expiresAt
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// IsRevoked reports whether a token ID has been revoked
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

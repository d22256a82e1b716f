package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TokenDenylist = (*Denylist)(nil)

const revokedPrefix = "revoked:"

// Denylist implements driven.TokenDenylist using Redis.
// Entries carry a TTL equal to the token's remaining life, so the set
// stays bounded by the number of tokens revoked within one TTL window.
type Denylist struct {
	client *redis.Client
}

// NewDenylist creates a new Redis-backed TokenDenylist
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client}
}

// Revoke marks a token ID as revoked until expiresAt
func (d *Denylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Token already expired, nothing to record
		return nil
	}

	if err := d.client.Set(ctx, revokedPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token ID has been revoked
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, err := d.client.Get(ctx, revokedPrefix+tokenID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return true, nil
}

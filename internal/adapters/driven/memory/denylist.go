package memory

import (
	"context"
	"sync"
	"time"

	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.TokenDenylist = (*Denylist)(nil)

// Denylist is an in-process TokenDenylist used when Redis is not
// configured. Revocations are lost on restart and not shared between
// replicas; single-instance deployments only.
type Denylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewDenylist creates a new in-memory TokenDenylist
func NewDenylist() *Denylist {
	return &Denylist{revoked: make(map[string]time.Time)}
}

// Revoke marks a token ID as revoked until expiresAt
func (d *Denylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if !expiresAt.After(time.Now()) {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[tokenID] = expiresAt
	d.prune()
	return nil
}

// IsRevoked reports whether a token ID has been revoked
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	expiresAt, ok := d.revoked[tokenID]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expiresAt), nil
}

// prune drops entries for tokens past their natural expiry.
// Caller must hold the write lock.
func (d *Denylist) prune() {
	now := time.Now()
	for id, expiresAt := range d.revoked {
		if now.After(expiresAt) {
			delete(d.revoked, id)
		}
	}
}

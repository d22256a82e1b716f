package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Ensure MockTokenDenylist implements TokenDenylist
var _ driven.TokenDenylist = (*MockTokenDenylist)(nil)

// MockTokenDenylist is an in-memory TokenDenylist for testing
type MockTokenDenylist struct {
	mu      sync.RWMutex
	revoked map[string]time.Time

	// FailWith, when set, is returned by every method
	FailWith error
}

// NewMockTokenDenylist creates a new MockTokenDenylist
func NewMockTokenDenylist() *MockTokenDenylist {
	return &MockTokenDenylist{revoked: make(map[string]time.Time)}
}

func (m *MockTokenDenylist) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = expiresAt
	return nil
}

func (m *MockTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if m.FailWith != nil {
		return false, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	expiresAt, ok := m.revoked[tokenID]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expiresAt), nil
}

// Count returns the number of revoked entries (test helper)
func (m *MockTokenDenylist) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.revoked)
}

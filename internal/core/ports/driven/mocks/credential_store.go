package mocks

import (
	"context"
	"sync"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Ensure MockCredentialStore implements CredentialStore
var _ driven.CredentialStore = (*MockCredentialStore)(nil)

// MockCredentialStore is an in-memory CredentialStore for testing
type MockCredentialStore struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	byEmail  map[string]*domain.Account

	// FailWith, when set, is returned by every method to simulate an
	// unavailable store.
	FailWith error

	// FailWrites, when set, is returned by Save and UpdatePasswordHash
	// only, leaving reads working.
	FailWrites error
}

// NewMockCredentialStore creates a new MockCredentialStore
func NewMockCredentialStore() *MockCredentialStore {
	return &MockCredentialStore{
		accounts: make(map[string]*domain.Account),
		byEmail:  make(map[string]*domain.Account),
	}
}

func (m *MockCredentialStore) Save(ctx context.Context, account *domain.Account) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	m.byEmail[account.Email] = account
	return nil
}

func (m *MockCredentialStore) Get(ctx context.Context, id string) (*domain.Account, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (m *MockCredentialStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	account, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return account, nil
}

func (m *MockCredentialStore) UpdatePasswordHash(ctx context.Context, id string, hash string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	account.PasswordHash = hash
	return nil
}

func (m *MockCredentialStore) Count(ctx context.Context) (int, error) {
	if m.FailWith != nil {
		return 0, m.FailWith
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.accounts), nil
}

// Reset clears all accounts (test helper)
func (m *MockCredentialStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts = make(map[string]*domain.Account)
	m.byEmail = make(map[string]*domain.Account)
}

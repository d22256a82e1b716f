package driven

import (
	"context"

	"github.com/clavis-labs/authcore/internal/core/domain"
)

// CredentialStore handles account persistence (PostgreSQL).
// UpdatePasswordHash must be atomic per record: concurrent resets for the
// same account may race last-writer-wins, but a reader never observes a
// torn hash.
type CredentialStore interface {
	// Save creates or updates an account
	Save(ctx context.Context, account *domain.Account) error

	// Get retrieves an account by ID
	Get(ctx context.Context, id string) (*domain.Account, error)

	// GetByEmail retrieves an account by email
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)

	// UpdatePasswordHash replaces the stored hash for an account
	UpdatePasswordHash(ctx context.Context, id string, hash string) error

	// Count returns the number of accounts
	Count(ctx context.Context) (int, error)
}

package services

import (
	"context"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
	"github.com/clavis-labs/authcore/internal/core/ports/driving"
)

// Ensure accountService implements AccountService
var _ driving.AccountService = (*accountService)(nil)

// accountService implements owner-scoped account reads
type accountService struct {
	credStore driven.CredentialStore
	guard     driving.AccessGuard
}

// NewAccountService creates a new AccountService
func NewAccountService(credStore driven.CredentialStore, guard driving.AccessGuard) driving.AccountService {
	return &accountService{credStore: credStore, guard: guard}
}

// GetAccount returns the account summary for id to its owner or an admin.
// The guard runs before the lookup: a denied caller gets ErrForbidden
// whether or not the record exists.
func (s *accountService) GetAccount(ctx context.Context, requester *domain.Principal, id string) (*domain.AccountSummary, error) {
	if err := s.guard.Authorize(requester, domain.OwnerOr(id, domain.RoleAdmin)); err != nil {
		return nil, err
	}

	account, err := s.credStore.Get(ctx, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}

	return account.ToSummary(), nil
}

// Me returns the requester's own account summary
func (s *accountService) Me(ctx context.Context, requester *domain.Principal) (*domain.AccountSummary, error) {
	if requester.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.GetAccount(ctx, requester, requester.ID)
}

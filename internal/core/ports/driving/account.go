package driving

import (
	"context"

	"github.com/clavis-labs/authcore/internal/core/domain"
)

// AccountService exposes the owner-scoped account read used by the API
type AccountService interface {
	// GetAccount returns the account summary for id. The requester must
	// own the account or hold RoleAdmin; authorization is decided before
	// existence is checked so denial cannot be used to probe for records.
	GetAccount(ctx context.Context, requester *domain.Principal, id string) (*domain.AccountSummary, error)

	// Me returns the requester's own account summary
	Me(ctx context.Context, requester *domain.Principal) (*domain.AccountSummary, error)
}

package services

import (
	"context"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
	"github.com/clavis-labs/authcore/internal/core/ports/driving"
)

// Ensure principalResolver implements PrincipalResolver
var _ driving.PrincipalResolver = (*principalResolver)(nil)

// principalResolver maps the verified subject of the current request to
// a full principal. The subject is passed in explicitly by whoever
// verified the token; there is no ambient security context.
type principalResolver struct {
	credStore driven.CredentialStore
}

// NewPrincipalResolver creates a new PrincipalResolver
func NewPrincipalResolver(credStore driven.CredentialStore) driving.PrincipalResolver {
	return &principalResolver{credStore: credStore}
}

// Resolve returns the principal for a verified subject. Absence of
// identity is a normal outcome: no subject, a lookup miss, a disabled
// account, and a store error all yield the anonymous principal.
func (r *principalResolver) Resolve(ctx context.Context, subject string) *domain.Principal {
	if subject == "" {
		return domain.Anonymous()
	}

	account, err := r.credStore.GetByEmail(ctx, subject)
	if err != nil {
		return domain.Anonymous()
	}

	if !account.Active {
		return domain.Anonymous()
	}

	return &domain.Principal{
		ID:       account.ID,
		Username: account.Email,
		Roles:    account.Roles,
	}
}

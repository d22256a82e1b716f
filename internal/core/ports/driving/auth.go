package driving

import (
	"context"

	"github.com/clavis-labs/authcore/internal/core/domain"
)

// AuthService handles the stateless session token lifecycle
type AuthService interface {
	// Login verifies credentials and issues a signed session token
	Login(ctx context.Context, req domain.LoginRequest) (*domain.IssuedToken, error)

	// ValidateToken verifies a bearer token and returns its subject.
	// Any structural, signature, expiry, or revocation failure returns
	// domain.ErrTokenInvalid with no further detail.
	ValidateToken(ctx context.Context, token string) (string, error)

	// Refresh re-signs a token for an already-resolved principal. It
	// extends a live session; it never resurrects an expired one.
	Refresh(ctx context.Context, principal *domain.Principal) (*domain.IssuedToken, error)

	// Logout revokes the presented token until its natural expiry.
	// An unparseable token is a no-op.
	Logout(ctx context.Context, token string) error
}

// PrincipalResolver maps a verified subject to a full principal.
// Resolution never fails: on any miss or store error the anonymous
// principal is returned.
type PrincipalResolver interface {
	Resolve(ctx context.Context, subject string) *domain.Principal
}

// AccessGuard decides whether a principal satisfies a requirement.
// Returns domain.ErrUnauthenticated for anonymous principals and
// domain.ErrForbidden for resolved principals lacking the capability.
type AccessGuard interface {
	Authorize(principal *domain.Principal, req domain.Requirement) error
}

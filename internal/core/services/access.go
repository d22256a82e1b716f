package services

import (
	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driving"
)

// Ensure accessGuard implements AccessGuard
var _ driving.AccessGuard = (*accessGuard)(nil)

// accessGuard applies role and ownership requirements. It only decides
// allowed/denied; callers choose how the denial surfaces (401 vs 403 vs
// hiding the resource entirely).
type accessGuard struct{}

// NewAccessGuard creates a new AccessGuard
func NewAccessGuard() driving.AccessGuard {
	return &accessGuard{}
}

// Authorize checks a requirement against a principal. Anonymous
// principals are denied for every requirement.
func (g *accessGuard) Authorize(principal *domain.Principal, req domain.Requirement) error {
	if principal.IsAnonymous() {
		return domain.ErrUnauthenticated
	}
	if !req.Allows(principal) {
		return domain.ErrForbidden
	}
	return nil
}

package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
	"github.com/clavis-labs/authcore/internal/core/ports/driving"
)

// Ensure authService implements AuthService
var _ driving.AuthService = (*authService)(nil)

// authService implements the stateless token lifecycle. Tokens are
// self-contained; the only server-side state consulted is the revocation
// denylist, keyed by token ID.
type authService struct {
	credStore   driven.CredentialStore
	authAdapter driven.AuthAdapter
	denylist    driven.TokenDenylist
	tokenTTL    time.Duration
	logger      *slog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	credStore driven.CredentialStore,
	authAdapter driven.AuthAdapter,
	denylist driven.TokenDenylist,
	tokenTTL time.Duration,
	logger *slog.Logger,
) driving.AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &authService{
		credStore:   credStore,
		authAdapter: authAdapter,
		denylist:    denylist,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login verifies credentials and issues a signed session token
func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (*domain.IssuedToken, error) {
	if req.Email == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	account, err := s.credStore.GetByEmail(ctx, req.Email)
	if err == domain.ErrNotFound {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		// An outage is not an existence oracle; it must not masquerade
		// as a credential failure.
		return nil, domain.ErrStoreUnavailable
	}

	if !account.Active {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.authAdapter.VerifyPassword(req.Password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(account.Email)
}

// ValidateToken verifies a bearer token and returns its subject.
// Every failure collapses to ErrTokenInvalid.
func (s *authService) ValidateToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domain.ErrTokenInvalid
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return "", domain.ErrTokenInvalid
	}

	if time.Now().Unix() >= claims.ExpiresAt {
		return "", domain.ErrTokenInvalid
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		// A denylist outage must not take authentication down with it;
		// the short TTL bounds the exposure window.
		s.logger.Warn("denylist lookup failed", "error", err)
	} else if revoked {
		return "", domain.ErrTokenInvalid
	}

	return claims.Subject, nil
}

// Refresh re-signs a token for an already-resolved principal
func (s *authService) Refresh(ctx context.Context, principal *domain.Principal) (*domain.IssuedToken, error) {
	if principal.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.issue(principal.Username)
}

// Logout revokes the presented token until its natural expiry
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.authAdapter.ParseToken(token)
	if err != nil {
		return nil // Already invalid, nothing to revoke
	}

	expiresAt := time.Unix(claims.ExpiresAt, 0)
	if err := s.denylist.Revoke(ctx, claims.TokenID, expiresAt); err != nil {
		return domain.ErrStoreUnavailable
	}
	return nil
}

func (s *authService) issue(subject string) (*domain.IssuedToken, error) {
	now := time.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := &domain.TokenClaims{
		Subject:   subject,
		TokenID:   uuid.NewString(),
		IssuedAt:  now.Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := s.authAdapter.GenerateToken(claims)
	if err != nil {
		return nil, err
	}

	return &domain.IssuedToken{Token: token, ExpiresAt: expiresAt}, nil
}

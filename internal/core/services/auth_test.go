package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAuthService() (*mocks.MockCredentialStore, *mocks.MockTokenDenylist, *authService) {
	credStore := mocks.NewMockCredentialStore()
	denylist := mocks.NewMockTokenDenylist()
	svc := NewAuthService(credStore, mocks.NewMockAuthAdapter(), denylist, time.Hour, testLogger()).(*authService)
	return credStore, denylist, svc
}

func seedAccount(t *testing.T, store *mocks.MockCredentialStore, active bool) *domain.Account {
	t.Helper()
	account := &domain.Account{
		ID:           "acc-123",
		Email:        "test@example.com",
		PasswordHash: "password123", // Mock hasher uses plain text comparison
		Name:         "Test Account",
		Roles:        []domain.Role{domain.RoleUser},
		Active:       active,
		CreatedAt:    time.Now(),
	}
	if err := store.Save(context.Background(), account); err != nil {
		t.Fatalf("failed to seed account: %v", err)
	}
	return account
}

func TestAuthService_Login(t *testing.T) {
	credStore, _, svc := newTestAuthService()
	seedAccount(t, credStore, true)

	tests := []struct {
		name    string
		req     domain.LoginRequest
		wantErr error
	}{
		{
			name:    "valid credentials",
			req:     domain.LoginRequest{Email: "test@example.com", Password: "password123"},
			wantErr: nil,
		},
		{
			name:    "empty email",
			req:     domain.LoginRequest{Email: "", Password: "password123"},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "empty password",
			req:     domain.LoginRequest{Email: "test@example.com", Password: ""},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "wrong password",
			req:     domain.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name:    "unknown account",
			req:     domain.LoginRequest{Email: "unknown@example.com", Password: "password123"},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issued, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if issued.Token == "" {
				t.Error("expected token to be issued")
			}
			if !issued.ExpiresAt.After(time.Now()) {
				t.Error("expected expiry in the future")
			}
		})
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	credStore, _, svc := newTestAuthService()
	seedAccount(t, credStore, false)

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	// Disabled accounts fail the same way as bad credentials
	if err != domain.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for inactive account, got %v", err)
	}
}

func TestAuthService_Login_StoreOutage(t *testing.T) {
	credStore, _, svc := newTestAuthService()
	seedAccount(t, credStore, true)
	credStore.FailWith = errors.New("connection refused")

	_, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	// An unreachable store is not a credential failure
	if err != domain.ErrStoreUnavailable {
		t.Errorf("expected ErrStoreUnavailable for store outage, got %v", err)
	}
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	credStore, _, svc := newTestAuthService()
	seedAccount(t, credStore, true)

	issued, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	subject, err := svc.ValidateToken(context.Background(), issued.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "test@example.com" {
		t.Errorf("expected subject test@example.com, got %s", subject)
	}
}

func TestAuthService_ValidateToken_Failures(t *testing.T) {
	_, _, svc := newTestAuthService()

	expired, _ := svc.authAdapter.GenerateToken(&domain.TokenClaims{
		Subject:   "test@example.com",
		TokenID:   "tok-1",
		IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	})

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-token"},
		{name: "expired token", token: expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), tt.token)
			if err != domain.ErrTokenInvalid {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}

func TestAuthService_ValidateToken_Revoked(t *testing.T) {
	credStore, _, svc := newTestAuthService()
	seedAccount(t, credStore, true)

	issued, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), issued.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	_, err = svc.ValidateToken(context.Background(), issued.Token)
	if err != domain.ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid for revoked token, got %v", err)
	}
}

func TestAuthService_ValidateToken_DenylistUnavailable(t *testing.T) {
	credStore, denylist, svc := newTestAuthService()
	seedAccount(t, credStore, true)

	issued, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A denylist outage must not reject otherwise-valid tokens
	denylist.FailWith = errors.New("connection refused")

	subject, err := svc.ValidateToken(context.Background(), issued.Token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subject != "test@example.com" {
		t.Errorf("expected subject test@example.com, got %s", subject)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	credStore, _, svc := newTestAuthService()
	seedAccount(t, credStore, true)

	first, err := svc.Login(context.Background(), domain.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	principal := &domain.Principal{
		ID:       "acc-123",
		Username: "test@example.com",
		Roles:    []domain.Role{domain.RoleUser},
	}

	refreshed, err := svc.Refresh(context.Background(), principal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !refreshed.ExpiresAt.After(first.ExpiresAt) {
		t.Error("expected refreshed expiry strictly later than original")
	}

	subject, err := svc.ValidateToken(context.Background(), refreshed.Token)
	if err != nil {
		t.Fatalf("refreshed token failed validation: %v", err)
	}
	if subject != "test@example.com" {
		t.Errorf("expected subject test@example.com, got %s", subject)
	}
}

func TestAuthService_Refresh_Anonymous(t *testing.T) {
	_, _, svc := newTestAuthService()

	_, err := svc.Refresh(context.Background(), domain.Anonymous())
	if err != domain.ErrUnauthenticated {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	_, denylist, svc := newTestAuthService()

	// Unparseable token is a no-op
	if err := svc.Logout(context.Background(), "garbage"); err != nil {
		t.Errorf("expected nil for unparseable token, got %v", err)
	}
	if denylist.Count() != 0 {
		t.Error("expected no denylist entries for unparseable token")
	}

	// Denylist failure surfaces as store unavailability
	token, _ := svc.authAdapter.GenerateToken(&domain.TokenClaims{
		Subject:   "test@example.com",
		TokenID:   "tok-2",
		IssuedAt:  time.Now().Unix(),
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})
	denylist.FailWith = errors.New("connection refused")
	if err := svc.Logout(context.Background(), token); err != domain.ErrStoreUnavailable {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

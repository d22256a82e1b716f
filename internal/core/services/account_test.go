package services

import (
	"context"
	"errors"
	"testing"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven/mocks"
)

func newTestAccountService() (*mocks.MockCredentialStore, *accountService) {
	credStore := mocks.NewMockCredentialStore()
	svc := NewAccountService(credStore, NewAccessGuard()).(*accountService)
	return credStore, svc
}

func TestAccountService_GetAccount(t *testing.T) {
	credStore, svc := newTestAccountService()

	account := &domain.Account{
		ID:     "acc-1",
		Email:  "alice@example.com",
		Name:   "Alice",
		Roles:  []domain.Role{domain.RoleUser},
		Active: true,
	}
	_ = credStore.Save(context.Background(), account)

	owner := &domain.Principal{ID: "acc-1", Username: "alice@example.com", Roles: []domain.Role{domain.RoleUser}}
	admin := &domain.Principal{ID: "acc-9", Username: "root@example.com", Roles: []domain.Role{domain.RoleAdmin}}
	other := &domain.Principal{ID: "acc-2", Username: "bob@example.com", Roles: []domain.Role{domain.RoleUser}}

	tests := []struct {
		name      string
		requester *domain.Principal
		id        string
		wantErr   error
	}{
		{name: "owner reads own account", requester: owner, id: "acc-1", wantErr: nil},
		{name: "admin reads any account", requester: admin, id: "acc-1", wantErr: nil},
		{name: "other user forbidden", requester: other, id: "acc-1", wantErr: domain.ErrForbidden},
		{name: "anonymous unauthenticated", requester: domain.Anonymous(), id: "acc-1", wantErr: domain.ErrUnauthenticated},
		// Denial comes before existence: a non-owner probing a missing id
		// sees the same forbidden outcome as for a real record.
		{name: "other user forbidden on missing id", requester: other, id: "acc-404", wantErr: domain.ErrForbidden},
		{name: "admin sees not found on missing id", requester: admin, id: "acc-404", wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := svc.GetAccount(context.Background(), tt.requester, tt.id)
			if err != tt.wantErr {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && summary.Email != "alice@example.com" {
				t.Errorf("expected alice@example.com, got %s", summary.Email)
			}
		})
	}
}

func TestAccountService_Me(t *testing.T) {
	credStore, svc := newTestAccountService()

	account := &domain.Account{
		ID:     "acc-1",
		Email:  "alice@example.com",
		Roles:  []domain.Role{domain.RoleUser},
		Active: true,
	}
	_ = credStore.Save(context.Background(), account)

	me, err := svc.Me(context.Background(), &domain.Principal{ID: "acc-1", Username: "alice@example.com", Roles: account.Roles})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if me.ID != "acc-1" {
		t.Errorf("expected id acc-1, got %s", me.ID)
	}

	if _, err := svc.Me(context.Background(), domain.Anonymous()); err != domain.ErrUnauthenticated {
		t.Errorf("expected ErrUnauthenticated for anonymous, got %v", err)
	}
}

func TestAccountService_Me_StoreOutage(t *testing.T) {
	credStore, svc := newTestAccountService()
	credStore.FailWith = errors.New("connection refused")

	requester := &domain.Principal{ID: "acc-1", Username: "alice@example.com", Roles: []domain.Role{domain.RoleUser}}
	if _, err := svc.Me(context.Background(), requester); err != domain.ErrStoreUnavailable {
		t.Errorf("expected ErrStoreUnavailable for store outage, got %v", err)
	}
}

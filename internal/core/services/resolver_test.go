package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven/mocks"
)

func TestPrincipalResolver_Resolve(t *testing.T) {
	credStore := mocks.NewMockCredentialStore()
	resolver := NewPrincipalResolver(credStore)

	account := &domain.Account{
		ID:        "acc-1",
		Email:     "alice@example.com",
		Name:      "Alice",
		Roles:     []domain.Role{domain.RoleUser, domain.RoleAdmin},
		Active:    true,
		CreatedAt: time.Now(),
	}
	_ = credStore.Save(context.Background(), account)

	p := resolver.Resolve(context.Background(), "alice@example.com")

	if p.IsAnonymous() {
		t.Fatal("expected resolved principal")
	}
	if p.ID != "acc-1" {
		t.Errorf("expected id acc-1, got %s", p.ID)
	}
	if p.Username != "alice@example.com" {
		t.Errorf("expected username alice@example.com, got %s", p.Username)
	}
	if !p.HasRole(domain.RoleAdmin) || !p.HasRole(domain.RoleUser) {
		t.Error("expected principal to carry the account's role snapshot")
	}
}

func TestPrincipalResolver_Resolve_Anonymous(t *testing.T) {
	credStore := mocks.NewMockCredentialStore()
	resolver := NewPrincipalResolver(credStore)

	inactive := &domain.Account{
		ID:     "acc-2",
		Email:  "inactive@example.com",
		Roles:  []domain.Role{domain.RoleUser},
		Active: false,
	}
	_ = credStore.Save(context.Background(), inactive)

	tests := []struct {
		name    string
		subject string
		setup   func()
	}{
		{name: "empty subject", subject: ""},
		{name: "unknown subject", subject: "nobody@example.com"},
		{name: "inactive account", subject: "inactive@example.com"},
		{
			name:    "store error",
			subject: "alice@example.com",
			setup:   func() { credStore.FailWith = errors.New("connection refused") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup()
			}
			p := resolver.Resolve(context.Background(), tt.subject)
			if !p.IsAnonymous() {
				t.Error("expected anonymous principal")
			}
		})
	}
}

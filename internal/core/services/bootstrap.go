package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// EnsureSeedAdmin creates the initial admin account when the store is
// empty. Called once at startup; a populated store is left untouched.
func EnsureSeedAdmin(
	ctx context.Context,
	credStore driven.CredentialStore,
	authAdapter driven.AuthAdapter,
	email, password string,
	logger *slog.Logger,
) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := credStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := authAdapter.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := &domain.Account{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         "Administrator",
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleAdmin, domain.RoleUser},
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := credStore.Save(ctx, admin); err != nil {
		return err
	}

	logger.Info("seed admin account created", "email", email)
	return nil
}

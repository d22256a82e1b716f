package services

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"github.com/clavis-labs/authcore/internal/core/domain"
	"github.com/clavis-labs/authcore/internal/core/ports/driven"
	"github.com/clavis-labs/authcore/internal/core/ports/driving"
)

// Ensure passwordResetService implements PasswordResetService
var _ driving.PasswordResetService = (*passwordResetService)(nil)

const (
	defaultResetPasswordLength = 12
	defaultNotifyTimeout       = 10 * time.Second

	resetMailSubject = "Your password has been reset"
)

// passwordResetService orchestrates self-service password recovery:
// generate a new random credential, persist its hash, notify the owner.
// The caller-visible outcome is identical for known and unknown emails.
type passwordResetService struct {
	credStore      driven.CredentialStore
	authAdapter    driven.AuthAdapter
	notifier       driven.Notifier
	passwordLength int
	notifyTimeout  time.Duration
	logger         *slog.Logger
}

// NewPasswordResetService creates a new PasswordResetService
func NewPasswordResetService(
	credStore driven.CredentialStore,
	authAdapter driven.AuthAdapter,
	notifier driven.Notifier,
	passwordLength int,
	logger *slog.Logger,
) driving.PasswordResetService {
	if passwordLength <= 0 {
		passwordLength = defaultResetPasswordLength
	}
	return &passwordResetService{
		credStore:      credStore,
		authAdapter:    authAdapter,
		notifier:       notifier,
		passwordLength: passwordLength,
		notifyTimeout:  defaultNotifyTimeout,
		logger:         logger,
	}
}

// RequestReset replaces the account's credential with a fresh random one
// and mails it to the registered address. An unknown email performs the
// same generate-and-hash work but skips the write, so the two branches
// stay in the same latency class and return the same outcome.
func (s *passwordResetService) RequestReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}

	account, err := s.credStore.GetByEmail(ctx, email)
	if err != nil && err != domain.ErrNotFound {
		return domain.ErrStoreUnavailable
	}

	plaintext, genErr := generatePassword(s.passwordLength)
	if genErr != nil {
		return genErr
	}

	hash, hashErr := s.authAdapter.HashPassword(plaintext)
	if hashErr != nil {
		return hashErr
	}

	if err == domain.ErrNotFound {
		return nil
	}

	// Never claim success without a confirmed write: the old hash stays
	// in place on failure, the new one replaces it whole on success.
	if err := s.credStore.UpdatePasswordHash(ctx, account.ID, hash); err != nil {
		return domain.ErrStoreUnavailable
	}

	// The credential is already replaced; a slow or failing mail channel
	// must not stall or fail the response. Dispatch runs detached with
	// its own timeout.
	go s.dispatch(account.Email, plaintext)

	return nil
}

func (s *passwordResetService) dispatch(to, plaintext string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	body := "Your new password is: " + plaintext + "\n\nPlease change it after signing in."
	if err := s.notifier.Send(ctx, to, resetMailSubject, body); err != nil {
		s.logger.Error("password reset notification failed", "error", err)
	}
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generatePassword builds a random credential from a CSPRNG
func generatePassword(length int) (string, error) {
	alphabetLen := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}

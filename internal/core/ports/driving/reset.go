package driving

import "context"

// PasswordResetService executes the self-service password recovery flow.
// RequestReset returns nil for both known and unknown emails; existence
// must not be observable from the outcome.
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
}

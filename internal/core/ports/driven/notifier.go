package driven

import "context"

// Notifier dispatches a message to an account's registered address.
// Failures are reported, not retried by the core.
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

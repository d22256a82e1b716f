package notify

import (
	"context"
	"log/slog"

	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.Notifier = (*LogNotifier)(nil)

// LogNotifier stands in for a mail channel when SMTP is not configured.
// The body may carry a fresh credential, so it is only emitted at debug
// level; normal logs record just the recipient and subject.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a Notifier that logs instead of sending
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Send records the message in the process log
func (n *LogNotifier) Send(ctx context.Context, to, subject, body string) error {
	n.logger.Info("notification suppressed (smtp not configured)", "to", to, "subject", subject)
	n.logger.Debug("suppressed notification body", "body", body)
	return nil
}

package notify

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("noreply@example.com", "alice@example.com", "Hello", "line one\nline two")

	if !strings.HasPrefix(msg, "From: noreply@example.com\r\n") {
		t.Error("expected From header first")
	}
	if !strings.Contains(msg, "To: alice@example.com\r\n") {
		t.Error("expected To header")
	}
	if !strings.Contains(msg, "Subject: Hello\r\n") {
		t.Error("expected Subject header")
	}
	if !strings.Contains(msg, "\r\n\r\nline one\nline two\r\n") {
		t.Error("expected blank line before body")
	}
}

func TestSMTPNotifier_ConnectFailure(t *testing.T) {
	notifier := NewSMTPNotifier(SMTPConfig{
		Host: "127.0.0.1",
		Port: 1, // Nothing listens here
		From: "noreply@example.com",
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := notifier.Send(ctx, "alice@example.com", "subject", "body"); err == nil {
		t.Error("expected error when the mail server is unreachable")
	}
}

func TestLogNotifier_Send(t *testing.T) {
	notifier := NewLogNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := notifier.Send(context.Background(), "alice@example.com", "subject", "body"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

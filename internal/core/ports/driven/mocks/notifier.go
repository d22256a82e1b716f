package mocks

import (
	"context"
	"sync"

	"github.com/clavis-labs/authcore/internal/core/ports/driven"
)

// Ensure MockNotifier implements Notifier
var _ driven.Notifier = (*MockNotifier)(nil)

// SentMessage records a dispatched notification
type SentMessage struct {
	To      string
	Subject string
	Body    string
}

// MockNotifier records sent messages instead of dispatching them
type MockNotifier struct {
	mu   sync.Mutex
	sent []SentMessage

	// FailWith, when set, is returned by Send
	FailWith error
}

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, body string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMessage{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of all recorded messages (test helper)
func (m *MockNotifier) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

package notification

import (
	"context"
	"sync"

	"helperhub/internal/helper/ports"
)

// Memory records sent notifications in memory. It doubles as the test
// double for asserting "exactly one welcome email went to this address".
type Memory struct {
	mu       sync.RWMutex
	sent     map[string][]ports.Message
	failWith error
}

func NewMemory() *Memory {
	return &Memory{sent: make(map[string][]ports.Message)}
}

// FailWith makes every subsequent Send return err. Test hook for the
// notification-failure path.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func (m *Memory) Send(_ context.Context, email string, message ports.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	m.sent[email] = append(m.sent[email], message)
	return nil
}

func (m *Memory) HasSentTo(_ context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sent[email]) > 0, nil
}

// SentTo returns every message recorded for an address, in send order.
func (m *Memory) SentTo(email string) []ports.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ports.Message, len(m.sent[email]))
	copy(out, m.sent[email])
	return out
}

package eventbus

import (
	"context"
	"sync"

	"helperhub/internal/helper/domain"
)

// Store persists published events for observability reads. The memory
// implementation backs tests and dev; production fans out to Kafka instead.
type Store interface {
	Append(ctx context.Context, event domain.Event) error
	List(ctx context.Context) []domain.Event
}

// MemoryStore is an append-only in-memory event log.
type MemoryStore struct {
	mu     sync.RWMutex
	events []domain.Event
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// List returns the events in publication order.
func (s *MemoryStore) List(_ context.Context) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}

// ByName filters the log to one event name, preserving order.
func (s *MemoryStore) ByName(ctx context.Context, name string) []domain.Event {
	var out []domain.Event
	for _, event := range s.List(ctx) {
		if event.EventName() == name {
			out = append(out, event)
		}
	}
	return out
}

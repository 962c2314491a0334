// Package eventbus provides the in-process domain event bus plus adapters
// that fan events out to Kafka and to an observability store.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/ports"
)

// Bus dispatches events to subscribers in subscription order, each handler
// awaited before the next. Handler errors are logged and swallowed: a slow
// or failing consumer must not undo persistence that already happened.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.Handler
	logger   *slog.Logger
}

// New constructs an empty bus. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]ports.Handler),
		logger:   logger,
	}
}

// Subscribe registers a handler for an event name. Registration order is
// dispatch order.
func (b *Bus) Subscribe(eventName string, handler ports.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish runs every handler subscribed to the event's name. It never
// returns a handler error; the in-memory bus itself cannot fail.
func (b *Bus) Publish(ctx context.Context, event domain.Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventName()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("event handler failed",
				"event", event.EventName(),
				"error", err,
			)
		}
	}
	return nil
}

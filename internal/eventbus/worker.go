package eventbus

import (
	"context"

	"helperhub/internal/helper/domain"
)

// Worker consumes events from a channel and persists them. It keeps
// background processing testable without wiring queue implementations.
type Worker struct {
	store Store
	inbox <-chan domain.Event
}

func NewWorker(store Store, inbox <-chan domain.Event) *Worker {
	return &Worker{store: store, inbox: inbox}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				return err
			}
		}
	}
}

// ChannelHandler returns a bus handler feeding the worker's inbox. Publish
// blocks when the inbox is full, preserving the bus's sequential guarantee.
func ChannelHandler(inbox chan<- domain.Event) func(ctx context.Context, event domain.Event) error {
	return func(ctx context.Context, event domain.Event) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case inbox <- event:
			return nil
		}
	}
}

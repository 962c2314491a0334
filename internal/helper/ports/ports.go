// Package ports declares the interfaces the onboarding core depends on.
// Implementations live in the store, notification, confirmation and eventbus
// packages; defining the contracts here keeps the use cases free of adapter
// imports.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"helperhub/internal/helper/domain"
	id "helperhub/pkg/domain"
)

// HelperRepository persists helper aggregates.
//
// Error contract: Save returns sentinel.ErrConflict (wrapped) when the email
// is already taken; Find methods return sentinel.ErrNotFound (wrapped) when
// no row matches. Each call is atomic from the caller's point of view.
type HelperRepository interface {
	Save(ctx context.Context, helper *domain.Helper) error
	FindByEmail(ctx context.Context, email string) (*domain.Helper, error)
	FindByPasswordSetupToken(ctx context.Context, token string) (*domain.Helper, error)
}

// HelperAccountRepository persists the credential side of a helper.
//
// Same error contract as HelperRepository; Create additionally returns
// sentinel.ErrConflict when the phone is already taken.
type HelperAccountRepository interface {
	Create(ctx context.Context, account *domain.HelperAccount) error
	Update(ctx context.Context, account *domain.HelperAccount) error
	FindByHelperID(ctx context.Context, helperID id.HelperID) (*domain.HelperAccount, error)
	FindByEmail(ctx context.Context, email string) (*domain.HelperAccount, error)
	FindByPhone(ctx context.Context, phone string) (*domain.HelperAccount, error)
	FindByPasswordSetupToken(ctx context.Context, token string) (*domain.HelperAccount, error)
}

// Message is the notification payload. Structured so providers can render
// templates; Body carries the pre-rendered fallback.
type Message struct {
	Subject string
	Body    string
	Data    map[string]string
}

// NotificationService delivers messages to helpers. HasSentTo is the
// idempotency surface used by tests and observability.
type NotificationService interface {
	Send(ctx context.Context, email string, message Message) error
	HasSentTo(ctx context.Context, email string) (bool, error)
}

// EmailConfirmationService verifies email confirmation tokens. Failures are
// coded domain errors: TOKEN_INVALID, TOKEN_EXPIRED, EMAIL_ALREADY_CONFIRMED.
type EmailConfirmationService interface {
	ConfirmEmail(ctx context.Context, token string) error
}

// Handler reacts to a published event. Handlers run in subscription order,
// each awaited before the next; a failing handler is logged by the bus and
// never rolls back the use case's committed work.
type Handler func(ctx context.Context, event domain.Event) error

// EventBus is an explicit subscription registry. No ambient or static
// registry exists; the composition root owns the instance.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventName string, handler Handler)
}

package service

import (
	"context"
	"log/slog"

	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/ports"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
)

// ConfirmHelperEmail wraps the confirmation service with event publication.
// The verification itself (signature, expiry, replay) lives behind the port.
type ConfirmHelperEmail struct {
	base
	confirmer ports.EmailConfirmationService
	bus       ports.EventBus
	clk       clock.Clock
}

func NewConfirmHelperEmail(
	confirmer ports.EmailConfirmationService,
	bus ports.EventBus,
	clk clock.Clock,
	opts ...Option,
) *ConfirmHelperEmail {
	uc := &ConfirmHelperEmail{confirmer: confirmer, bus: bus, clk: clk}
	for _, opt := range opts {
		opt(&uc.base)
	}
	return uc
}

func (uc *ConfirmHelperEmail) Execute(ctx context.Context, token string) error {
	if err := uc.confirmer.ConfirmEmail(ctx, token); err != nil {
		code := dErrors.CodeOf(err)
		_ = uc.bus.Publish(ctx, domain.HelperEmailConfirmationFailed{
			Token:      token,
			Reason:     string(code),
			Err:        err.Error(),
			OccurredAt: uc.clk.Now(),
		})
		uc.metrics.IncrementEmailConfirmation(string(code))
		uc.log(ctx, slog.LevelWarn, "email confirmation failed", "reason", string(code))
		return err
	}

	_ = uc.bus.Publish(ctx, domain.HelperEmailConfirmationSucceeded{
		Token:      token,
		OccurredAt: uc.clk.Now(),
	})
	uc.metrics.IncrementEmailConfirmation("success")
	uc.log(ctx, slog.LevelInfo, "email confirmed")
	return nil
}

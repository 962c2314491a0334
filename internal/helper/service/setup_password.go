package service

import (
	"context"
	"errors"
	"log/slog"

	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/ports"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
	"helperhub/pkg/platform/sentinel"
)

// SetupHelperPassword exchanges a one-time setup token for a stored password
// hash. The cheap state checks (token known, password absent, token fresh)
// run before the password is validated or hashed, so callers probing with a
// stale link never trigger bcrypt work.
//
// Not idempotent: a second call with the same token fails with
// PASSWORD_ALREADY_SET.
type SetupHelperPassword struct {
	base
	accounts ports.HelperAccountRepository
	bus      ports.EventBus
	clk      clock.Clock
}

func NewSetupHelperPassword(
	accounts ports.HelperAccountRepository,
	bus ports.EventBus,
	clk clock.Clock,
	opts ...Option,
) *SetupHelperPassword {
	uc := &SetupHelperPassword{accounts: accounts, bus: bus, clk: clk}
	for _, opt := range opts {
		opt(&uc.base)
	}
	return uc
}

func (uc *SetupHelperPassword) Execute(ctx context.Context, token, plainPassword string) error {
	account, err := uc.accounts.FindByPasswordSetupToken(ctx, token)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeTokenInvalid, "setup token does not match an account")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not load account")
	}

	if account.HasPassword() {
		return dErrors.New(dErrors.CodePasswordAlreadySet, "a password has already been set")
	}
	if account.SetupToken().IsExpired(uc.clk) {
		return dErrors.New(dErrors.CodeTokenExpired, "setup token has expired")
	}

	password, err := domain.NewPassword(plainPassword)
	if err != nil {
		return err
	}
	hash, err := password.Hash()
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}

	if err := account.SetPassword(hash, uc.clk.Now()); err != nil {
		return err
	}
	if err := uc.accounts.Update(ctx, account); err != nil {
		return dErrors.Wrap(err, dErrors.CodeSaveFailed, "could not persist credentials")
	}

	_ = uc.bus.Publish(ctx, domain.HelperCredentialsUpdated{
		Email:      account.Email().String(),
		OccurredAt: uc.clk.Now(),
	})
	uc.metrics.IncrementPasswordsSet()
	uc.log(ctx, slog.LevelInfo, "helper password set",
		"helper_id", account.HelperID().String())
	return nil
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/ports"
	"helperhub/internal/notification"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
	"helperhub/pkg/platform/sentinel"
)

// OnboardHelperInput is the raw onboarding request. Phone is optional;
// residence is either a French department code or a foreign country.
type OnboardHelperInput struct {
	Email            string
	Phone            string
	Firstname        string
	Lastname         string
	Birthdate        time.Time
	FrenchDepartment string
	ForeignCountry   string
	PlaceOfBirth     string
	Professions      []string
}

// OnboardHelper validates an application, persists the helper, provisions
// the credential account with a password setup token and notifies the
// applicant. Every attempt ends with exactly one onboarding event on the
// bus, succeeded or failed.
type OnboardHelper struct {
	base
	helpers  ports.HelperRepository
	accounts ports.HelperAccountRepository
	notifier ports.NotificationService
	bus      ports.EventBus
	clk      clock.Clock
	tokenTTL time.Duration
	catalog  []string
}

// NewOnboardHelper constructs the use case. An empty catalog accepts any
// declared profession; a non-empty one rejects unknown entries.
func NewOnboardHelper(
	helpers ports.HelperRepository,
	accounts ports.HelperAccountRepository,
	notifier ports.NotificationService,
	bus ports.EventBus,
	clk clock.Clock,
	tokenTTL time.Duration,
	catalog []string,
	opts ...Option,
) *OnboardHelper {
	uc := &OnboardHelper{
		helpers:  helpers,
		accounts: accounts,
		notifier: notifier,
		bus:      bus,
		clk:      clk,
		tokenTTL: tokenTTL,
		catalog:  catalog,
	}
	for _, opt := range opts {
		opt(&uc.base)
	}
	return uc
}

func (uc *OnboardHelper) Execute(ctx context.Context, input OnboardHelperInput) (*domain.Helper, error) {
	started := uc.clk.Now()

	helper, err := domain.NewHelper(uc.clk, domain.NewHelperParams{
		Email:            input.Email,
		Firstname:        input.Firstname,
		Lastname:         input.Lastname,
		Birthdate:        input.Birthdate,
		FrenchDepartment: input.FrenchDepartment,
		ForeignCountry:   input.ForeignCountry,
		PlaceOfBirth:     input.PlaceOfBirth,
		Professions:      input.Professions,
	})
	if err != nil {
		return nil, uc.fail(ctx, input, err)
	}

	phone, err := domain.NewPhone(input.Phone)
	if err != nil {
		return nil, uc.fail(ctx, input, err)
	}

	if len(uc.catalog) > 0 {
		if err := domain.ValidateProfessions(helper.Professions(), uc.catalog); err != nil {
			return nil, uc.fail(ctx, input, err)
		}
	}

	if err := uc.checkDuplicates(ctx, helper.Email(), phone); err != nil {
		return nil, uc.fail(ctx, input, err)
	}

	if err := uc.helpers.Save(ctx, helper); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, uc.fail(ctx, input, dErrors.New(dErrors.CodeEmailAlreadyInUse, "email is already in use"))
		}
		return nil, uc.fail(ctx, input, dErrors.Wrap(err, dErrors.CodeSaveFailed, "could not persist helper"))
	}

	token, err := domain.GeneratePasswordSetupToken(uc.clk, uc.tokenTTL)
	if err != nil {
		return nil, uc.fail(ctx, input, dErrors.Wrap(err, dErrors.CodeInternal, "could not generate setup token"))
	}
	account := domain.ProvisionAccount(uc.clk, helper.ID(), helper.Email(), phone, token)
	if err := uc.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, uc.fail(ctx, input, dErrors.New(dErrors.CodePhoneAlreadyInUse, "phone is already in use"))
		}
		return nil, uc.fail(ctx, input, dErrors.Wrap(err, dErrors.CodeSaveFailed, "could not provision account"))
	}

	uc.notify(ctx, helper, token)

	now := uc.clk.Now()
	_ = uc.bus.Publish(ctx, domain.HelperOnboardingSucceeded{
		HelperID:   helper.ID(),
		Email:      helper.Email().String(),
		Firstname:  helper.Firstname().String(),
		Lastname:   helper.Lastname().String(),
		OccurredAt: now,
	})
	uc.metrics.IncrementOnboardingOutcome("success")
	uc.metrics.ObserveOnboardLatency(now.Sub(started))
	uc.log(ctx, slog.LevelInfo, "helper onboarded",
		"helper_id", helper.ID().String(),
		"email", helper.Email().String())

	return helper, nil
}

func (uc *OnboardHelper) checkDuplicates(ctx context.Context, email domain.Email, phone domain.Phone) error {
	_, err := uc.helpers.FindByEmail(ctx, email.String())
	switch {
	case err == nil:
		return dErrors.New(dErrors.CodeEmailAlreadyInUse, "email is already in use")
	case !errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not check email uniqueness")
	}

	if phone.IsZero() {
		return nil
	}
	_, err = uc.accounts.FindByPhone(ctx, phone.String())
	switch {
	case err == nil:
		return dErrors.New(dErrors.CodePhoneAlreadyInUse, "phone is already in use")
	case !errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not check phone uniqueness")
	}
	return nil
}

// notify sends the welcome message and the password setup link. Delivery
// failures are logged and counted; the onboarding itself stands.
func (uc *OnboardHelper) notify(ctx context.Context, helper *domain.Helper, token domain.PasswordSetupToken) {
	email := helper.Email().String()
	messages := []ports.Message{
		notification.WelcomeMessage(email, helper.Firstname().String()),
		notification.PasswordSetupMessage(helper.Firstname().String(), token.Value()),
	}
	for _, msg := range messages {
		if err := uc.notifier.Send(ctx, email, msg); err != nil {
			uc.metrics.IncrementNotification("failed")
			uc.log(ctx, slog.LevelWarn, "notification delivery failed",
				"email", email,
				"subject", msg.Subject,
				"error", err)
			continue
		}
		uc.metrics.IncrementNotification("sent")
	}
}

// fail publishes the failed event, counts the outcome and returns err
// unchanged so handlers can map it to a status code.
func (uc *OnboardHelper) fail(ctx context.Context, input OnboardHelperInput, err error) error {
	code := dErrors.CodeOf(err)
	_ = uc.bus.Publish(ctx, domain.HelperOnboardingFailed{
		Email:      input.Email,
		Firstname:  input.Firstname,
		Lastname:   input.Lastname,
		Reason:     string(code),
		Err:        err.Error(),
		OccurredAt: uc.clk.Now(),
	})
	uc.metrics.IncrementOnboardingOutcome(string(code))
	uc.log(ctx, slog.LevelWarn, "helper onboarding failed",
		"email", input.Email,
		"reason", string(code))
	return err
}

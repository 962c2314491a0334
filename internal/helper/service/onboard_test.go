package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"helperhub/internal/eventbus"
	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/ports/mocks"
	"helperhub/internal/helper/service"
	"helperhub/internal/helper/store"
	"helperhub/internal/notification"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
	"helperhub/pkg/platform/sentinel"
)

type OnboardSuite struct {
	suite.Suite
	ctx      context.Context
	clk      *clock.Stepping
	helpers  *store.MemoryHelperStore
	accounts *store.MemoryAccountStore
	notifier *notification.Memory
	bus      *eventbus.Bus
	events   *eventbus.MemoryStore
	uc       *service.OnboardHelper
}

func TestOnboardSuite(t *testing.T) {
	suite.Run(t, new(OnboardSuite))
}

func (s *OnboardSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *OnboardSuite) SetupTest() {
	s.ctx = context.Background()
	s.clk = clock.SteppingAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.accounts = store.NewMemoryAccountStore()
	s.helpers = store.NewMemoryHelperStore(s.accounts)
	s.notifier = notification.NewMemory()
	s.bus = eventbus.New(nil)
	s.events = eventbus.NewMemoryStore()
	for _, name := range []string{domain.EventHelperOnboardingSucceeded, domain.EventHelperOnboardingFailed} {
		s.bus.Subscribe(name, func(ctx context.Context, event domain.Event) error {
			return s.events.Append(ctx, event)
		})
	}
	s.uc = service.NewOnboardHelper(s.helpers, s.accounts, s.notifier, s.bus, s.clk, 24*time.Hour, nil)
}

func validInput() service.OnboardHelperInput {
	return service.OnboardHelperInput{
		Email:            "marie.dubois@example.org",
		Phone:            "+33612345678",
		Firstname:        "Marie",
		Lastname:         "Dubois",
		Birthdate:        time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		FrenchDepartment: "75",
		PlaceOfBirth:     "Paris",
		Professions:      []string{"nurse"},
	}
}

func (s *OnboardSuite) TestOnboardHelper() {
	s.Run("valid application is persisted and announced", func() {
		helper, err := s.uc.Execute(s.ctx, validInput())
		s.Require().NoError(err)
		s.Equal(domain.StatusPendingReview, helper.Status())
		s.Equal(1, s.helpers.Count())

		account, err := s.accounts.FindByHelperID(s.ctx, helper.ID())
		s.Require().NoError(err)
		s.False(account.SetupToken().IsZero())
		s.False(account.HasPassword())

		published := s.events.ByName(s.ctx, domain.EventHelperOnboardingSucceeded)
		s.Require().Len(published, 1)
		event, ok := published[0].(domain.HelperOnboardingSucceeded)
		s.Require().True(ok)
		s.Equal(helper.ID(), event.HelperID)
		s.Equal("marie.dubois@example.org", event.Email)
		s.Equal("Marie", event.Firstname)
		s.Equal("Dubois", event.Lastname)
	})

	s.Run("applicant receives the welcome and setup messages", func() {
		helper, err := s.uc.Execute(s.ctx, validInput())
		s.Require().NoError(err)

		sent, err := s.notifier.HasSentTo(s.ctx, helper.Email().String())
		s.Require().NoError(err)
		s.True(sent)

		messages := s.notifier.SentTo(helper.Email().String())
		s.Require().Len(messages, 2)
		s.Contains(messages[0].Body, "Marie")

		account, err := s.accounts.FindByHelperID(s.ctx, helper.ID())
		s.Require().NoError(err)
		s.Equal(account.SetupToken().Value(), messages[1].Data["token"])
	})
}

func (s *OnboardSuite) TestOnboardHelperRejections() {
	s.Run("invalid email fails with its code and a failed event", func() {
		input := validInput()
		input.Email = "not-an-email"

		_, err := s.uc.Execute(s.ctx, input)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeEmailInvalid))
		s.Equal(0, s.helpers.Count())

		failed := s.events.ByName(s.ctx, domain.EventHelperOnboardingFailed)
		s.Require().Len(failed, 1)
		event := failed[0].(domain.HelperOnboardingFailed)
		s.Equal(string(dErrors.CodeEmailInvalid), event.Reason)

		sent, err := s.notifier.HasSentTo(s.ctx, input.Email)
		s.Require().NoError(err)
		s.False(sent)
	})

	s.Run("duplicate email is a conflict and keeps one record", func() {
		_, err := s.uc.Execute(s.ctx, validInput())
		s.Require().NoError(err)

		input := validInput()
		input.Phone = "+33698765432"
		_, err = s.uc.Execute(s.ctx, input)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeEmailAlreadyInUse))
		s.Equal(1, s.helpers.Count())

		failed := s.events.ByName(s.ctx, domain.EventHelperOnboardingFailed)
		s.Require().Len(failed, 1)
	})

	s.Run("profession outside the catalog is rejected", func() {
		uc := service.NewOnboardHelper(s.helpers, s.accounts, s.notifier, s.bus, s.clk, 24*time.Hour,
			[]string{"nurse", "caregiver"})
		input := validInput()
		input.Professions = []string{"nurse", "astronaut"}

		_, err := uc.Execute(s.ctx, input)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeProfessionUnknown))
		s.Equal(0, s.helpers.Count())
	})

	s.Run("duplicate phone is a conflict", func() {
		_, err := s.uc.Execute(s.ctx, validInput())
		s.Require().NoError(err)

		input := validInput()
		input.Email = "jean.martin@example.org"

		_, err = s.uc.Execute(s.ctx, input)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodePhoneAlreadyInUse))
	})
}

func (s *OnboardSuite) TestOnboardHelperNotificationFailure() {
	s.notifier.FailWith(errors.New("smtp unavailable"))

	helper, err := s.uc.Execute(s.ctx, validInput())
	s.Require().NoError(err)
	s.Equal(1, s.helpers.Count())

	sent, err := s.notifier.HasSentTo(s.ctx, helper.Email().String())
	s.Require().NoError(err)
	s.False(sent)

	s.Len(s.events.ByName(s.ctx, domain.EventHelperOnboardingSucceeded), 1)
}

func TestOnboardHelperSaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	clk := clock.FrozenAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	helpers := mocks.NewMockHelperRepository(ctrl)
	accounts := store.NewMemoryAccountStore()
	notifier := notification.NewMemory()
	bus := mocks.NewMockEventBus(ctrl)

	helpers.EXPECT().FindByEmail(gomock.Any(), "marie.dubois@example.org").
		Return(nil, fmt.Errorf("helper: %w", sentinel.ErrNotFound))
	helpers.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))
	bus.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(domain.HelperOnboardingFailed{})).
		Return(nil)

	uc := service.NewOnboardHelper(helpers, accounts, notifier, bus, clk, 24*time.Hour, nil)

	_, err := uc.Execute(ctx, validInput())
	require.Error(t, err)
	require.True(t, dErrors.HasCode(err, dErrors.CodeSaveFailed))
}

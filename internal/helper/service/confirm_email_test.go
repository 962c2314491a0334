package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"helperhub/internal/eventbus"
	"helperhub/internal/helper/domain"
	"helperhub/internal/helper/ports/mocks"
	"helperhub/internal/helper/service"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
)

func TestConfirmHelperEmail(t *testing.T) {
	newFixture := func(t *testing.T) (*mocks.MockEmailConfirmationService, *eventbus.MemoryStore, *service.ConfirmHelperEmail) {
		ctrl := gomock.NewController(t)
		confirmer := mocks.NewMockEmailConfirmationService(ctrl)
		events := eventbus.NewMemoryStore()

		bus := eventbus.New(nil)
		names := []string{domain.EventHelperEmailConfirmationSucceeded, domain.EventHelperEmailConfirmationFailed}
		for _, name := range names {
			bus.Subscribe(name, func(ctx context.Context, event domain.Event) error {
				return events.Append(ctx, event)
			})
		}
		clk := clock.FrozenAt(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
		return confirmer, events, service.NewConfirmHelperEmail(confirmer, bus, clk)
	}

	t.Run("accepted token publishes the succeeded event", func(t *testing.T) {
		confirmer, events, uc := newFixture(t)
		confirmer.EXPECT().ConfirmEmail(gomock.Any(), "token-123").Return(nil)

		err := uc.Execute(context.Background(), "token-123")
		require.NoError(t, err)

		published := events.ByName(context.Background(), domain.EventHelperEmailConfirmationSucceeded)
		require.Len(t, published, 1)
		require.Equal(t, "token-123", published[0].(domain.HelperEmailConfirmationSucceeded).Token)
	})

	t.Run("rejected token propagates the code and publishes the failed event", func(t *testing.T) {
		confirmer, events, uc := newFixture(t)
		confirmer.EXPECT().ConfirmEmail(gomock.Any(), "stale-token").
			Return(dErrors.New(dErrors.CodeTokenExpired, "confirmation token has expired"))

		err := uc.Execute(context.Background(), "stale-token")
		require.True(t, dErrors.HasCode(err, dErrors.CodeTokenExpired))

		published := events.ByName(context.Background(), domain.EventHelperEmailConfirmationFailed)
		require.Len(t, published, 1)
		event := published[0].(domain.HelperEmailConfirmationFailed)
		require.Equal(t, "stale-token", event.Token)
		require.Equal(t, string(dErrors.CodeTokenExpired), event.Reason)
	})
}

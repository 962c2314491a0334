package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRecordsSends(t *testing.T) {
	ctx := context.Background()
	svc := NewMemory()

	sent, err := svc.HasSentTo(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.False(t, sent)

	require.NoError(t, svc.Send(ctx, "jane@example.com", WelcomeMessage("jane@example.com", "Jane")))

	sent, err = svc.HasSentTo(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.True(t, sent)

	messages := svc.SentTo("jane@example.com")
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0].Body, "Jane")
}

func TestMemoryFailWith(t *testing.T) {
	ctx := context.Background()
	svc := NewMemory()
	svc.FailWith(errors.New("provider down"))

	err := svc.Send(ctx, "jane@example.com", WelcomeMessage("jane@example.com", "Jane"))
	require.Error(t, err)

	sent, err := svc.HasSentTo(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestWelcomeMessageFallsBackToEmailName(t *testing.T) {
	message := WelcomeMessage("john.smith@example.com", "")
	assert.Contains(t, message.Body, "John")
	assert.Equal(t, "John", message.Data["firstname"])
}

func TestPasswordSetupMessageCarriesToken(t *testing.T) {
	message := PasswordSetupMessage("Jane", "tok-123")
	assert.Equal(t, "tok-123", message.Data["token"])
	assert.Contains(t, message.Body, "Jane")
}

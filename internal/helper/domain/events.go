package domain

import (
	"time"

	id "helperhub/pkg/domain"
)

// Event names used for bus subscriptions and serialized payloads.
const (
	EventHelperOnboardingSucceeded        = "helper_onboarding_succeeded"
	EventHelperOnboardingFailed           = "helper_onboarding_failed"
	EventHelperEmailConfirmationSucceeded = "helper_email_confirmation_succeeded"
	EventHelperEmailConfirmationFailed    = "helper_email_confirmation_failed"
	EventHelperCredentialsUpdated         = "helper_credentials_updated"
)

// Event is an immutable fact record. Timestamps come from the use case's
// injected clock, never from the bus.
type Event interface {
	EventName() string
	EventTime() time.Time
}

// HelperOnboardingSucceeded is published after a helper record is persisted.
type HelperOnboardingSucceeded struct {
	HelperID   id.HelperID `json:"helper_id"`
	Email      string      `json:"email"`
	Firstname  string      `json:"firstname"`
	Lastname   string      `json:"lastname"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func (HelperOnboardingSucceeded) EventName() string { return EventHelperOnboardingSucceeded }

func (e HelperOnboardingSucceeded) EventTime() time.Time { return e.OccurredAt }

// HelperOnboardingFailed is published when validation or persistence stops
// an onboarding attempt.
type HelperOnboardingFailed struct {
	Email      string    `json:"email"`
	Firstname  string    `json:"firstname"`
	Lastname   string    `json:"lastname"`
	Reason     string    `json:"reason"`
	Err        string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (HelperOnboardingFailed) EventName() string { return EventHelperOnboardingFailed }

func (e HelperOnboardingFailed) EventTime() time.Time { return e.OccurredAt }

// HelperEmailConfirmationSucceeded is published after a confirmation token
// is accepted.
type HelperEmailConfirmationSucceeded struct {
	Token      string    `json:"token"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (HelperEmailConfirmationSucceeded) EventName() string {
	return EventHelperEmailConfirmationSucceeded
}

func (e HelperEmailConfirmationSucceeded) EventTime() time.Time { return e.OccurredAt }

// HelperEmailConfirmationFailed is published when a confirmation token is
// rejected.
type HelperEmailConfirmationFailed struct {
	Token      string    `json:"token"`
	Reason     string    `json:"reason"`
	Err        string    `json:"error"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (HelperEmailConfirmationFailed) EventName() string { return EventHelperEmailConfirmationFailed }

func (e HelperEmailConfirmationFailed) EventTime() time.Time { return e.OccurredAt }

// HelperCredentialsUpdated is published after a password is set.
type HelperCredentialsUpdated struct {
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (HelperCredentialsUpdated) EventName() string { return EventHelperCredentialsUpdated }

func (e HelperCredentialsUpdated) EventTime() time.Time { return e.OccurredAt }

package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"helperhub/pkg/platform/clock"
)

// setupTokenBytes gives 256 bits of entropy before encoding.
const setupTokenBytes = 32

// PasswordSetupToken is a single-use, time-limited credential letting a
// helper set their initial password. Expiry is fixed at generation time from
// the injected clock; no method reads ambient time.
type PasswordSetupToken struct {
	value     string
	createdAt time.Time
	expiresAt time.Time
}

// GeneratePasswordSetupToken mints a fresh token valid for ttl from the
// clock's now.
func GeneratePasswordSetupToken(clk clock.Clock, ttl time.Duration) (PasswordSetupToken, error) {
	buf := make([]byte, setupTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return PasswordSetupToken{}, fmt.Errorf("could not generate setup token: %w", err)
	}
	now := clk.Now()
	return PasswordSetupToken{
		value:     base64.RawURLEncoding.EncodeToString(buf),
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

// PasswordSetupTokenFromStored rehydrates a token read from persistence.
func PasswordSetupTokenFromStored(value string, createdAt, expiresAt time.Time) PasswordSetupToken {
	return PasswordSetupToken{value: value, createdAt: createdAt, expiresAt: expiresAt}
}

func (t PasswordSetupToken) Value() string { return t.value }

func (t PasswordSetupToken) CreatedAt() time.Time { return t.createdAt }

func (t PasswordSetupToken) ExpiresAt() time.Time { return t.expiresAt }

// IsExpired compares against the injected clock.
func (t PasswordSetupToken) IsExpired(clk clock.Clock) bool {
	return t.IsExpiredAt(clk.Now())
}

// IsExpiredAt reports whether the token is expired at the given instant.
// The exact expiry instant is still valid.
func (t PasswordSetupToken) IsExpiredAt(now time.Time) bool {
	return now.After(t.expiresAt)
}

func (t PasswordSetupToken) IsZero() bool { return t.value == "" }

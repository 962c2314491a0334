package domain

import (
	"time"

	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
)

// minimumAgeYears is the legal floor for working as a helper.
const minimumAgeYears = 16

// Birthdate is a validated date of birth. Validation reads time through the
// injected clock only, so age rules stay deterministic under test.
type Birthdate struct {
	value time.Time
}

// NewBirthdate rejects missing dates, dates at or after the current instant,
// and dates that would make the subject younger than sixteen as of the
// clock's now.
func NewBirthdate(raw time.Time, clk clock.Clock) (Birthdate, error) {
	if raw.IsZero() {
		return Birthdate{}, dErrors.New(dErrors.CodeBirthdateRequired, "birthdate is required").
			WithDetail("field", "birthdate")
	}
	now := clk.Now()
	if !raw.Before(now) {
		return Birthdate{}, dErrors.New(dErrors.CodeBirthdateInFuture, "birthdate cannot be in the future").
			WithDetail("field", "birthdate")
	}
	cutoff := now.AddDate(-minimumAgeYears, 0, 0)
	if raw.After(cutoff) {
		return Birthdate{}, dErrors.Newf(dErrors.CodeBirthdateTooYoung, "helper must be at least %d years old", minimumAgeYears).
			WithDetail("field", "birthdate")
	}
	return Birthdate{value: raw}, nil
}

func (b Birthdate) Time() time.Time { return b.value }

func (b Birthdate) IsZero() bool { return b.value.IsZero() }

package domain

import (
	"regexp"
	"strings"

	dErrors "helperhub/pkg/domain-errors"
)

// emailPattern intentionally stays loose: one @, no whitespace, a dot in the
// domain. Real deliverability is proven by the confirmation email, not the
// regex.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const emailMaxLength = 254

// Email is a validated email address. The zero value is invalid; construct
// through NewEmail only.
type Email struct {
	value string
}

// NewEmail validates and wraps an email address. The original string is
// preserved apart from surrounding whitespace.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, dErrors.New(dErrors.CodeEmailInvalid, "email is required").
			WithDetail("field", "email")
	}
	if len(trimmed) > emailMaxLength {
		return Email{}, dErrors.Newf(dErrors.CodeEmailInvalid, "email must be at most %d characters", emailMaxLength).
			WithDetail("field", "email").
			WithDetail("length", len(trimmed))
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, dErrors.New(dErrors.CodeEmailInvalid, "email is malformed").
			WithDetail("field", "email")
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string { return e.value }

func (e Email) IsZero() bool { return e.value == "" }

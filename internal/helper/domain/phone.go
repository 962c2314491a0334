package domain

import (
	"regexp"
	"strings"

	dErrors "helperhub/pkg/domain-errors"
)

// E.164-ish: optional +, no leading zero, 9 to 15 digits total.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{8,14}$`)

// Phone is an optional, validated phone number. The zero value means
// "no phone provided" and is a legal state, unlike the other value objects.
type Phone struct {
	value string
}

// NewPhone validates a phone number. An empty or whitespace-only input is
// not an error: it yields the zero Phone.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Phone{}, nil
	}
	if !phonePattern.MatchString(trimmed) {
		return Phone{}, dErrors.New(dErrors.CodePhoneInvalid, "phone must be in international format").
			WithDetail("field", "phone")
	}
	return Phone{value: trimmed}, nil
}

func (p Phone) String() string { return p.value }

func (p Phone) IsZero() bool { return p.value == "" }

package domain

import (
	"strings"

	dErrors "helperhub/pkg/domain-errors"
)

const nameMinLength = 2

// Firstname is a validated given name.
type Firstname struct {
	value string
}

// NewFirstname requires a trimmed length of at least two characters.
func NewFirstname(raw string) (Firstname, error) {
	trimmed := strings.TrimSpace(raw)
	if len([]rune(trimmed)) < nameMinLength {
		return Firstname{}, dErrors.Newf(dErrors.CodeFirstnameTooShort, "firstname must be at least %d characters", nameMinLength).
			WithDetail("field", "firstname")
	}
	return Firstname{value: trimmed}, nil
}

func (n Firstname) String() string { return n.value }

func (n Firstname) IsZero() bool { return n.value == "" }

// Lastname is a validated family name.
type Lastname struct {
	value string
}

// NewLastname requires a trimmed length of at least two characters.
func NewLastname(raw string) (Lastname, error) {
	trimmed := strings.TrimSpace(raw)
	if len([]rune(trimmed)) < nameMinLength {
		return Lastname{}, dErrors.Newf(dErrors.CodeLastnameTooShort, "lastname must be at least %d characters", nameMinLength).
			WithDetail("field", "lastname")
	}
	return Lastname{value: trimmed}, nil
}

func (n Lastname) String() string { return n.value }

func (n Lastname) IsZero() bool { return n.value == "" }

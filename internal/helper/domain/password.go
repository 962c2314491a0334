package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	dErrors "helperhub/pkg/domain-errors"
)

const passwordMinLength = 8

// passwordSpecials is the fixed set of accepted special characters.
const passwordSpecials = `!@#$%^&*()_+-=[]{};':",./<>?`

// Password is a validated plaintext password. It is transient: it exists
// only long enough to be hashed and is never persisted or logged.
type Password struct {
	value string
}

// NewPassword enforces the strength policy: at least eight characters with
// an upper, a lower, a digit and one accepted special character.
func NewPassword(raw string) (Password, error) {
	if utf8.RuneCountInString(raw) < passwordMinLength {
		return Password{}, weakPassword("password must be at least 8 characters")
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range raw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return Password{}, weakPassword("password must contain an uppercase letter")
	case !hasLower:
		return Password{}, weakPassword("password must contain a lowercase letter")
	case !hasDigit:
		return Password{}, weakPassword("password must contain a digit")
	case !hasSpecial:
		return Password{}, weakPassword("password must contain a special character")
	}
	return Password{value: raw}, nil
}

func weakPassword(message string) error {
	return dErrors.New(dErrors.CodePasswordTooWeak, message).WithDetail("field", "password")
}

// Hash derives a salted one-way hash at the fixed work factor.
func (p Password) Hash() (PasswordHash, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(p.value), bcrypt.DefaultCost)
	if err != nil {
		return PasswordHash{}, dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return PasswordHash{value: string(hashed)}, nil
}

// PasswordHash is a stored bcrypt hash. Comparison happens through the hash
// only; the plaintext never round-trips.
type PasswordHash struct {
	value string
}

// PasswordHashFromStored rehydrates a hash read from persistence.
func PasswordHashFromStored(stored string) PasswordHash {
	return PasswordHash{value: stored}
}

// Matches reports whether the plaintext corresponds to this hash.
func (h PasswordHash) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(h.value), []byte(plain)) == nil
}

func (h PasswordHash) String() string { return h.value }

func (h PasswordHash) IsZero() bool { return h.value == "" }

package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	err := New(CodeEmailInvalid, "email is malformed")
	assert.True(t, HasCode(err, CodeEmailInvalid))
	assert.False(t, HasCode(err, CodePhoneInvalid))
	assert.False(t, HasCode(errors.New("plain"), CodeEmailInvalid))
	assert.False(t, HasCode(nil, CodeEmailInvalid))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(CodeTokenExpired, "setup token expired")
	wrapped := fmt.Errorf("checking account: %w", inner)
	assert.True(t, HasCode(wrapped, CodeTokenExpired))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeSaveFailed, "could not persist helper")

	require.True(t, errors.Is(err, cause))
	assert.Equal(t, CodeSaveFailed, CodeOf(err))
	assert.Contains(t, err.Error(), "SAVE_FAILED")
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestWithDetailDoesNotMutate(t *testing.T) {
	base := New(CodeFirstnameTooShort, "firstname must be at least 2 characters")
	derived := base.WithDetail("field", "firstname")

	assert.Nil(t, base.Details)
	assert.Equal(t, "firstname", derived.Details["field"])
	assert.Equal(t, base.Code, derived.Code)
}

func TestErrorsIsMatchesOnCode(t *testing.T) {
	err := Newf(CodeProfessionUnknown, "profession %q is not recognized", "alchemist")
	assert.True(t, errors.Is(err, New(CodeProfessionUnknown, "")))
	assert.False(t, errors.Is(err, New(CodeOtpInvalid, "")))
}

func TestFamilies(t *testing.T) {
	assert.True(t, IsValidation(New(CodeBirthdateTooYoung, "")))
	assert.False(t, IsValidation(New(CodeEmailAlreadyInUse, "")))
	assert.True(t, IsConflict(New(CodePhoneAlreadyInUse, "")))
	assert.False(t, IsConflict(New(CodeTokenExpired, "")))
}

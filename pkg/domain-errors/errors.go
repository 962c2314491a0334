// Package domainerrors provides coded domain errors for the onboarding core.
//
// Every expected failure carries a stable machine-readable code, a human
// message, and optional structured details for field-level feedback. Codes
// are part of the API contract and must not change between releases;
// message text is free to evolve.
//
// Infrastructure layers return sentinel errors (pkg/platform/sentinel) and
// services translate them into coded errors at the use-case boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies a failure condition. Exactly one code per condition.
type Code string

const (
	// Validation codes: malformed or out-of-range input, recoverable by the
	// caller supplying corrected input.
	CodeEmailInvalid               Code = "EMAIL_INVALID"
	CodePhoneInvalid               Code = "PHONE_INVALID"
	CodeFirstnameTooShort          Code = "FIRSTNAME_TOO_SHORT"
	CodeLastnameTooShort           Code = "LASTNAME_TOO_SHORT"
	CodeBirthdateRequired          Code = "BIRTHDATE_REQUIRED"
	CodeBirthdateInFuture          Code = "BIRTHDATE_IN_FUTURE"
	CodeBirthdateTooYoung          Code = "BIRTHDATE_TOO_YOUNG"
	CodeResidenceDepartmentInvalid Code = "RESIDENCE_DEPARTMENT_INVALID"
	CodeResidenceCountryNotAllowed Code = "RESIDENCE_COUNTRY_NOT_ALLOWED"
	CodeProfessionUnknown          Code = "PROFESSION_UNKNOWN"
	CodeCredentialWrongType        Code = "CREDENTIAL_WRONG_TYPE"
	CodeCredentialTooLarge         Code = "CREDENTIAL_TOO_LARGE"
	CodeCredentialEmpty            Code = "CREDENTIAL_EMPTY"
	CodeCredentialSizeInvalid      Code = "CREDENTIAL_SIZE_INVALID"
	CodePasswordTooWeak            Code = "PASSWORD_TOO_WEAK"
	CodeOtpInvalid                 Code = "OTP_INVALID"

	// Conflict codes: the input is well-formed but collides with existing
	// state owned by someone else.
	CodeEmailAlreadyInUse Code = "EMAIL_ALREADY_IN_USE"
	CodePhoneAlreadyInUse Code = "PHONE_ALREADY_IN_USE"

	// State codes: illegal state transitions, not malformed input.
	CodeTokenInvalid          Code = "TOKEN_INVALID"
	CodeTokenExpired          Code = "TOKEN_EXPIRED"
	CodePasswordAlreadySet    Code = "PASSWORD_ALREADY_SET"
	CodeEmailAlreadyConfirmed Code = "EMAIL_ALREADY_CONFIRMED"

	// Infrastructure codes: not the caller's fault. Provider internals are
	// never leaked through the message.
	CodeSaveFailed Code = "SAVE_FAILED"
	CodeInternal   Code = "INTERNAL"
)

// Error is the single concrete error type crossing use-case boundaries.
// Constructed at the validation site and never mutated afterwards; WithDetail
// returns a copy.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is makes errors.Is match on code equality so callers can compare against
// a template error without caring about message or details.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// New constructs a coded error with no cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf constructs a coded error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error. The cause stays
// reachable through errors.Is/As but is never serialized at the boundary.
func Wrap(err error, code Code, message string) *Error {
	return &Error{Code: code, Message: message, cause: err}
}

// WithDetail returns a copy of the error carrying an extra detail entry.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	return &Error{Code: e.Code, Message: e.Message, Details: details, cause: e.cause}
}

// HasCode reports whether err (or anything it wraps) carries the given code.
func HasCode(err error, code Code) bool {
	var derr *Error
	if !errors.As(err, &derr) {
		return false
	}
	return derr.Code == code
}

// CodeOf extracts the code from err, or CodeInternal when err carries none.
func CodeOf(err error) Code {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Code
	}
	return CodeInternal
}

// IsValidation reports whether the code belongs to the validation family.
func IsValidation(err error) bool {
	return CodeOf(err).IsValidation()
}

// IsValidation reports whether the code belongs to the validation family.
func (c Code) IsValidation() bool {
	switch c {
	case CodeEmailInvalid, CodePhoneInvalid, CodeFirstnameTooShort,
		CodeLastnameTooShort, CodeBirthdateRequired, CodeBirthdateInFuture,
		CodeBirthdateTooYoung,
		CodeResidenceDepartmentInvalid, CodeResidenceCountryNotAllowed,
		CodeProfessionUnknown, CodeCredentialWrongType, CodeCredentialTooLarge,
		CodeCredentialEmpty, CodeCredentialSizeInvalid, CodePasswordTooWeak,
		CodeOtpInvalid:
		return true
	}
	return false
}

// IsConflict reports whether the code belongs to the conflict family.
func IsConflict(err error) bool {
	switch CodeOf(err) {
	case CodeEmailAlreadyInUse, CodePhoneAlreadyInUse:
		return true
	}
	return false
}

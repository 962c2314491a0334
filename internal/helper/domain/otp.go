package domain

import (
	dErrors "helperhub/pkg/domain-errors"
)

const otpLength = 6

// OtpCode is a validated six-digit one-time code.
type OtpCode struct {
	value string
}

// NewOtpCode accepts exactly six ASCII digits.
func NewOtpCode(raw string) (OtpCode, error) {
	if len(raw) != otpLength {
		return OtpCode{}, invalidOtp()
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return OtpCode{}, invalidOtp()
		}
	}
	return OtpCode{value: raw}, nil
}

func invalidOtp() error {
	return dErrors.New(dErrors.CodeOtpInvalid, "code must be exactly 6 digits").
		WithDetail("field", "otp")
}

func (c OtpCode) String() string { return c.value }

func (c OtpCode) IsZero() bool { return c.value == "" }

// Package confirmation implements the EmailConfirmationService port with
// HS256 signed tokens. The token carries the account email; confirming
// flips the account flag exactly once.
package confirmation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"helperhub/internal/helper/ports"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
	"helperhub/pkg/platform/sentinel"
)

// Service issues and verifies email confirmation tokens.
type Service struct {
	secret   []byte
	accounts ports.HelperAccountRepository
	clk      clock.Clock
}

func New(secret []byte, accounts ports.HelperAccountRepository, clk clock.Clock) *Service {
	return &Service{secret: secret, accounts: accounts, clk: clk}
}

// IssueToken mints a confirmation token for an email address, valid for ttl
// from the injected clock's now.
func (s *Service) IssueToken(email string, ttl time.Duration) (string, error) {
	now := s.clk.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign confirmation token: %w", err)
	}
	return signed, nil
}

// ConfirmEmail verifies the token and marks the account's email confirmed.
// Failures map onto the coded taxonomy: TOKEN_EXPIRED for an out-of-date
// token, TOKEN_INVALID for anything unverifiable, EMAIL_ALREADY_CONFIRMED
// on replay.
func (s *Service) ConfirmEmail(ctx context.Context, token string) error {
	parsed, err := jwt.Parse(token,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clk.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return dErrors.New(dErrors.CodeTokenExpired, "confirmation token has expired")
		}
		return dErrors.New(dErrors.CodeTokenInvalid, "confirmation token is invalid")
	}

	email, err := parsed.Claims.GetSubject()
	if err != nil || email == "" {
		return dErrors.New(dErrors.CodeTokenInvalid, "confirmation token is invalid")
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeTokenInvalid, "confirmation token does not match an account")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not load account")
	}

	if err := account.ConfirmEmail(); err != nil {
		return err
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not persist confirmation")
	}
	return nil
}

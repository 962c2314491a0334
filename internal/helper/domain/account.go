package domain

import (
	"time"

	id "helperhub/pkg/domain"
	dErrors "helperhub/pkg/domain-errors"
	"helperhub/pkg/platform/clock"
)

// HelperAccount is the credential side of a helper, keyed 1:1 by HelperID.
//
// Invariants:
//   - the password transitions from absent to set exactly once; setting it
//     consumes the setup token
//   - the setup token expiry is fixed at provisioning time from the clock
type HelperAccount struct {
	helperID       id.HelperID
	email          Email
	phone          Phone
	passwordHash   PasswordHash
	passwordSetAt  time.Time
	setupToken     PasswordSetupToken
	emailConfirmed bool
	createdAt      time.Time
	lastLoginAt    time.Time
}

// ProvisionAccount creates the account record at onboarding time, carrying
// the freshly minted setup token.
func ProvisionAccount(clk clock.Clock, helperID id.HelperID, email Email, phone Phone, token PasswordSetupToken) *HelperAccount {
	return &HelperAccount{
		helperID:   helperID,
		email:      email,
		phone:      phone,
		setupToken: token,
		createdAt:  clk.Now(),
	}
}

func (a *HelperAccount) HelperID() id.HelperID { return a.helperID }

func (a *HelperAccount) Email() Email { return a.email }

func (a *HelperAccount) Phone() Phone { return a.phone }

func (a *HelperAccount) PasswordHash() PasswordHash { return a.passwordHash }

func (a *HelperAccount) PasswordSetAt() time.Time { return a.passwordSetAt }

func (a *HelperAccount) SetupToken() PasswordSetupToken { return a.setupToken }

func (a *HelperAccount) EmailConfirmed() bool { return a.emailConfirmed }

func (a *HelperAccount) CreatedAt() time.Time { return a.createdAt }

func (a *HelperAccount) LastLoginAt() time.Time { return a.lastLoginAt }

func (a *HelperAccount) HasPassword() bool { return !a.passwordHash.IsZero() }

// SetPassword records the hash and consumes the setup token. A second call
// is a state error; password setup cannot be replayed.
func (a *HelperAccount) SetPassword(hash PasswordHash, now time.Time) error {
	if a.HasPassword() {
		return dErrors.New(dErrors.CodePasswordAlreadySet, "password has already been set")
	}
	a.passwordHash = hash
	a.passwordSetAt = now
	a.setupToken = PasswordSetupToken{}
	return nil
}

// ConfirmEmail marks the address confirmed, once.
func (a *HelperAccount) ConfirmEmail() error {
	if a.emailConfirmed {
		return dErrors.New(dErrors.CodeEmailAlreadyConfirmed, "email has already been confirmed")
	}
	a.emailConfirmed = true
	return nil
}

// RecordLogin stamps the last login instant.
func (a *HelperAccount) RecordLogin(now time.Time) {
	a.lastLoginAt = now
}

// AuthUser projects the account into the shape the identity provider works
// with.
func (a *HelperAccount) AuthUser() AuthUser {
	return AuthUser{
		HelperID:       a.helperID,
		Email:          a.email.String(),
		EmailConfirmed: a.emailConfirmed,
	}
}

// AuthUser is the external identity projection of a helper account.
type AuthUser struct {
	HelperID       id.HelperID
	Email          string
	EmailConfirmed bool
}

// AccountSnapshot is the persistence shape of a HelperAccount.
type AccountSnapshot struct {
	HelperID       id.HelperID
	Email          string
	Phone          string
	PasswordHash   string
	PasswordSetAt  time.Time
	TokenValue     string
	TokenCreatedAt time.Time
	TokenExpiresAt time.Time
	EmailConfirmed bool
	CreatedAt      time.Time
	LastLoginAt    time.Time
}

// Snapshot exports the account for persistence.
func (a *HelperAccount) Snapshot() AccountSnapshot {
	return AccountSnapshot{
		HelperID:       a.helperID,
		Email:          a.email.String(),
		Phone:          a.phone.String(),
		PasswordHash:   a.passwordHash.String(),
		PasswordSetAt:  a.passwordSetAt,
		TokenValue:     a.setupToken.Value(),
		TokenCreatedAt: a.setupToken.CreatedAt(),
		TokenExpiresAt: a.setupToken.ExpiresAt(),
		EmailConfirmed: a.emailConfirmed,
		CreatedAt:      a.createdAt,
		LastLoginAt:    a.lastLoginAt,
	}
}

// RehydrateAccount rebuilds an account from a stored snapshot.
func RehydrateAccount(s AccountSnapshot) *HelperAccount {
	account := &HelperAccount{
		helperID:       s.HelperID,
		email:          Email{value: s.Email},
		phone:          Phone{value: s.Phone},
		passwordHash:   PasswordHashFromStored(s.PasswordHash),
		passwordSetAt:  s.PasswordSetAt,
		emailConfirmed: s.EmailConfirmed,
		createdAt:      s.CreatedAt,
		lastLoginAt:    s.LastLoginAt,
	}
	if s.TokenValue != "" {
		account.setupToken = PasswordSetupTokenFromStored(s.TokenValue, s.TokenCreatedAt, s.TokenExpiresAt)
	}
	return account
}

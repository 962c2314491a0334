package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helperhub/internal/helper/domain"
	dErrors "helperhub/pkg/domain-errors"
)

func TestNewPasswordPolicy(t *testing.T) {
	t.Run("accepts a strong password", func(t *testing.T) {
		_, err := domain.NewPassword("Str0ng!pass")
		assert.NoError(t, err)
	})

	t.Run("rejects weak passwords with PASSWORD_TOO_WEAK", func(t *testing.T) {
		weak := []string{
			"Sh0rt!q",       // 7 chars
			"Aa1!xyé",       // 7 runes, 8 bytes: length counts runes
			"l0wercase!only", // no upper
			"UPPERCASE0!",    // no lower
			"NoDigits!here",  // no digit
			"NoSpecial0here", // no special
		}
		for _, raw := range weak {
			_, err := domain.NewPassword(raw)
			require.Error(t, err, "input %q", raw)
			assert.True(t, dErrors.HasCode(err, dErrors.CodePasswordTooWeak), "input %q", raw)
		}
	})
}

func TestPasswordHashRoundTrip(t *testing.T) {
	password, err := domain.NewPassword("Str0ng!pass")
	require.NoError(t, err)

	hash, err := password.Hash()
	require.NoError(t, err)
	require.False(t, hash.IsZero())

	assert.NotEqual(t, "Str0ng!pass", hash.String())
	assert.True(t, hash.Matches("Str0ng!pass"))
	assert.False(t, hash.Matches("Str0ng!pasz"))
}

func TestPasswordHashFromStored(t *testing.T) {
	password, err := domain.NewPassword("Str0ng!pass")
	require.NoError(t, err)
	hash, err := password.Hash()
	require.NoError(t, err)

	rehydrated := domain.PasswordHashFromStored(hash.String())
	assert.True(t, rehydrated.Matches("Str0ng!pass"))
}

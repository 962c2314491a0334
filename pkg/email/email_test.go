package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveNameFromEmail(t *testing.T) {
	tests := []struct {
		email string
		first string
		last  string
	}{
		{"jane.doe@example.com", "Jane", "Doe"},
		{"jane_doe@example.com", "Jane", "Doe"},
		{"jane+signup@example.com", "Jane", "Signup"},
		{"jane@example.com", "Jane", "Helper"},
		{"@example.com", "Helper", "Helper"},
		{"...", "Helper", "Helper"},
	}
	for _, tt := range tests {
		first, last := DeriveNameFromEmail(tt.email)
		assert.Equal(t, tt.first, first, "email %q", tt.email)
		assert.Equal(t, tt.last, last, "email %q", tt.email)
	}
}

// Package notification implements the NotificationService port: an in-memory
// recorder for tests/dev and a Redis-backed sent-set for distributed
// deployments.
package notification

import (
	"fmt"

	"helperhub/internal/helper/ports"
	emailutil "helperhub/pkg/email"
)

// WelcomeMessage builds the onboarding welcome notification. When the
// firstname is missing the greeting falls back to a name derived from the
// email's local part.
func WelcomeMessage(email, firstname string) ports.Message {
	if firstname == "" {
		firstname, _ = emailutil.DeriveNameFromEmail(email)
	}
	return ports.Message{
		Subject: "Welcome to the helper platform",
		Body:    fmt.Sprintf("Hello %s, your application has been received and is under review.", firstname),
		Data: map[string]string{
			"template":  "helper_welcome",
			"firstname": firstname,
		},
	}
}

// PasswordSetupMessage builds the notification carrying a password setup
// link token.
func PasswordSetupMessage(firstname, token string) ports.Message {
	return ports.Message{
		Subject: "Set up your password",
		Body:    fmt.Sprintf("Hello %s, use the link in this email to choose your password.", firstname),
		Data: map[string]string{
			"template": "helper_password_setup",
			"token":    token,
		},
	}
}

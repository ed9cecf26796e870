package auth

import (
	"context"

	"github.com/mmynk/finapi/internal/models"
)

// Authenticator registers and authenticates users. Implementations decide
// what a credential is; PasswordAuthenticator treats it as a password.
type Authenticator interface {
	// Register creates a new user account with the given name, email and credential.
	Register(ctx context.Context, name, email, credential string) (*models.User, error)

	// Authenticate verifies the credential and returns the matching user.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks the credential against the implementation's rules.
	ValidateCredential(credential string) error
}

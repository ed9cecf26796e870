package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/finapi/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrWeakPassword       = errors.New("password is too short")
	ErrEmailExists        = errors.New("email already registered")
	ErrMissingFields      = errors.New("name, email and password are required")
)

// Ensure PasswordAuthenticator implements Authenticator
var _ Authenticator = (*PasswordAuthenticator)(nil)

// UserStorage is the slice of the user store the authenticator needs.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage    UserStorage
	minLength  int
	bcryptCost int
}

// NewPasswordAuthenticator creates a password authenticator. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewPasswordAuthenticator(storage UserStorage, minLength, bcryptCost int) *PasswordAuthenticator {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &PasswordAuthenticator{
		storage:    storage,
		minLength:  minLength,
		bcryptCost: bcryptCost,
	}
}

// ValidateCredential checks the password length.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < a.minLength {
		return fmt.Errorf("%w: at least %d characters", ErrWeakPassword, a.minLength)
	}
	return nil
}

// Register creates a new user account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, name, email, credential string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || credential == "" {
		return nil, ErrMissingFields
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(name, email, string(hashed))
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
// An unknown email and a wrong password produce the same error.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	user, err := a.storage.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

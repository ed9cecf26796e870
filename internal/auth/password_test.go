package auth

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/finapi/internal/storage/memory"
)

func newTestAuthenticator() *PasswordAuthenticator {
	return NewPasswordAuthenticator(memory.New(), 6, bcrypt.MinCost)
}

func TestPasswordAuthenticator_Register(t *testing.T) {
	ctx := context.Background()
	a := newTestAuthenticator()

	user, err := a.Register(ctx, "Alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("Expected user ID to be generated")
	}
	if user.Name != "Alice" || user.Email != "alice@example.com" {
		t.Errorf("Unexpected user: %+v", user)
	}
	if user.PasswordHash == "secret1" {
		t.Error("Password stored in plain text")
	}

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"duplicate email", "Other", "alice@example.com", "secret1", ErrEmailExists},
		{"duplicate email differs in case", "Other", "ALICE@example.com", "secret1", ErrEmailExists},
		{"short password", "Bob", "bob@example.com", "12345", ErrWeakPassword},
		{"missing name", "  ", "bob@example.com", "secret1", ErrMissingFields},
		{"missing email", "Bob", "", "secret1", ErrMissingFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.userName, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestPasswordAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()
	a := newTestAuthenticator()

	registered, err := a.Register(ctx, "Alice", "alice@example.com", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "alice@example.com", "secret1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.ID != registered.ID {
			t.Errorf("Expected user %s, got %s", registered.ID, user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "alice@example.com", "wrong-password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "nobody@example.com", "secret1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestNewPasswordAuthenticator_InvalidCost(t *testing.T) {
	a := NewPasswordAuthenticator(memory.New(), 6, 99)
	if a.bcryptCost != bcrypt.DefaultCost {
		t.Errorf("Expected default cost, got %d", a.bcryptCost)
	}
}

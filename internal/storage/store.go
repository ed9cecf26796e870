// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/finapi/internal/models"
)

// UserStore defines the user persistence operations.
type UserStore interface {
	// CreateUser persists a new user. The user's ID must already be set.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil, nil when no user has that email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil, nil when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// StatementStore defines the operations over the append-only ledger.
// Statements are never updated or deleted, and every backend must return
// them in insertion order.
type StatementStore interface {
	// CreateStatement builds a statement from input (fresh ID, current
	// timestamps), appends it and returns the stored copy.
	CreateStatement(ctx context.Context, input models.CreateStatementInput) (*models.Statement, error)

	// FindStatementOperation returns the statement only if it is owned by
	// userID. A statement owned by someone else is reported exactly like a
	// missing one: nil, nil.
	FindStatementOperation(ctx context.Context, statementID, userID string) (*models.Statement, error)

	// GetUserBalance folds every statement where userID is the owner or the
	// sender into a balance. The statements themselves are included only when
	// withStatements is true.
	GetUserBalance(ctx context.Context, userID string, withStatements bool) (*models.Balance, error)
}

// Store is the full storage backend used by the server.
// This abstraction allows swapping storage backends (memory, SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	UserStore
	StatementStore

	// Close releases any resources held by the store.
	Close() error
}

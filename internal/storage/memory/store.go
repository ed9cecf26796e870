// Package memory provides an in-memory implementation of storage.Store.
// It backs the test suites and the "memory" database driver.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/mmynk/finapi/internal/calculator"
	"github.com/mmynk/finapi/internal/models"
	"github.com/mmynk/finapi/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps users in a map and statements in an append-only slice.
type Store struct {
	mu         sync.RWMutex
	users      map[string]models.User
	statements []models.Statement
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		users:      make(map[string]models.User),
		statements: make([]models.Statement, 0),
	}
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// CreateUser stores a copy of user. Emails are unique, case-insensitively.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; ok {
		return fmt.Errorf("failed to create user: duplicate id %s", user.ID)
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("failed to create user: duplicate email %s", user.Email)
		}
	}
	s.users[user.ID] = *user
	return nil
}

// GetUserByEmail retrieves a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// GetUserByID retrieves a user by ID.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// CreateStatement appends a new statement.
func (s *Store) CreateStatement(ctx context.Context, input models.CreateStatementInput) (*models.Statement, error) {
	statement := models.NewStatement(input)

	s.mu.Lock()
	s.statements = append(s.statements, *statement)
	s.mu.Unlock()

	return statement, nil
}

// FindStatementOperation retrieves a statement by ID if userID owns it.
func (s *Store) FindStatementOperation(ctx context.Context, statementID, userID string) (*models.Statement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.statements {
		if st.ID == statementID && st.UserID == userID {
			found := st
			return &found, nil
		}
	}
	return nil, nil
}

// GetUserBalance computes userID's balance over the whole ledger.
func (s *Store) GetUserBalance(ctx context.Context, userID string, withStatements bool) (*models.Balance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Summarize copies the matching statements out of s.statements.
	return calculator.Summarize(s.statements, userID, withStatements), nil
}

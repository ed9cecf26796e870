// Package statements implements the ledger use cases: deposits and
// withdrawals, transfers between users, and statement/balance queries.
//
// Every operation resolves the acting user first, reads the ledger, and then
// appends at most one statement. Balance checks and the append that depends
// on them run under a per-user lock so two concurrent debits can never both
// pass against the same pre-debit balance.
package statements

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/finapi/internal/events"
	"github.com/mmynk/finapi/internal/metrics"
	"github.com/mmynk/finapi/internal/models"
	"github.com/mmynk/finapi/internal/storage"
)

// UserLookup resolves user IDs. GetUserByID returns nil, nil for an unknown ID.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Service runs the statement use cases against a UserLookup and a StatementStore.
type Service struct {
	users     UserLookup
	store     storage.StatementStore
	publisher events.Publisher
	metrics   *metrics.LedgerMetrics
	logger    *slog.Logger
	locks     *keyedMutex
}

// NewService creates a statement service. publisher, m and logger may be nil.
func NewService(users UserLookup, store storage.StatementStore, publisher events.Publisher, m *metrics.LedgerMetrics, logger *slog.Logger) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:     users,
		store:     store,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		locks:     newKeyedMutex(),
	}
}

// userExists reports whether id resolves to a user.
func (s *Service) userExists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, nil
	}
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to look up user %s: %w", id, err)
	}
	return user != nil, nil
}

// reject records a failed operation and hands the error back.
func (s *Service) reject(operation string, err error) error {
	s.metrics.IncRejected(operation, reason(err))
	return err
}

// debit appends input after checking that debtorID's balance covers its
// amount. The check and the append run under debtorID's lock, which is
// released before the caller runs any side effects.
func (s *Service) debit(ctx context.Context, operation, debtorID string, input models.CreateStatementInput) (*models.Statement, error) {
	unlock := s.locks.Lock(debtorID)
	defer unlock()

	balance, err := s.store.GetUserBalance(ctx, debtorID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	if balance.Amount.LessThan(input.Amount) {
		s.logger.Info("Debit rejected",
			"operation", operation,
			"user_id", debtorID,
			"balance", balance.Amount,
			"amount", input.Amount,
		)
		return nil, s.reject(operation, ErrInsufficientFunds)
	}

	statement, err := s.store.CreateStatement(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", operation, err)
	}
	return statement, nil
}

// recordCreated runs the side effects of a successful append. It must be
// called without holding a user lock. The statement is already durable, so a
// failed publish is only logged.
func (s *Service) recordCreated(ctx context.Context, statement *models.Statement) {
	s.metrics.IncStatementCreated(statement.Type.String())

	if err := s.publisher.Publish(ctx, events.NewStatementCreated(statement)); err != nil {
		s.logger.Warn("Failed to publish statement event",
			"statement_id", statement.ID,
			"type", statement.Type,
			"error", err,
		)
	}
}

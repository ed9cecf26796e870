package statements

import (
	"context"
	"fmt"

	"github.com/mmynk/finapi/internal/models"
)

// GetStatementOperation returns one of userID's statements.
// A statement owned by another user is reported as ErrStatementNotFound.
func (s *Service) GetStatementOperation(ctx context.Context, userID, statementID string) (*models.Statement, error) {
	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, s.reject("get_statement", ErrUserNotFound)
	}

	statement, err := s.store.FindStatementOperation(ctx, statementID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find statement: %w", err)
	}
	if statement == nil {
		return nil, s.reject("get_statement", ErrStatementNotFound)
	}

	return statement, nil
}

// GetBalance returns userID's balance together with every statement that
// contributed to it, in ledger order.
func (s *Service) GetBalance(ctx context.Context, userID string) (*models.Balance, error) {
	exists, err := s.userExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, s.reject("get_balance", ErrUserNotFound)
	}

	balance, err := s.store.GetUserBalance(ctx, userID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

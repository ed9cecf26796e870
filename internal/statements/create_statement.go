package statements

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/models"
)

// CreateStatementInput describes a deposit or withdrawal by UserID.
type CreateStatementInput struct {
	UserID      string
	Type        models.OperationType
	Amount      decimal.Decimal
	Description string
}

// CreateStatement records a deposit or a withdrawal.
//
// Fails with ErrUserNotFound if the user does not resolve, and, for
// withdrawals, with ErrInsufficientFunds if the balance is below the amount.
func (s *Service) CreateStatement(ctx context.Context, input CreateStatementInput) (*models.Statement, error) {
	operation := input.Type.String()

	// transfers go through CreateTransfer
	if !input.Type.IsValid() || input.Type.IsTransfer() {
		return nil, s.reject(operation, ErrInvalidOperationType)
	}
	if !models.ValidAmount(input.Amount) {
		return nil, s.reject(operation, ErrInvalidAmount)
	}

	exists, err := s.userExists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, s.reject(operation, ErrUserNotFound)
	}

	entry := models.CreateStatementInput{
		UserID:      input.UserID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
	}

	var statement *models.Statement
	if input.Type == models.OperationTypeWithdraw {
		statement, err = s.debit(ctx, operation, input.UserID, entry)
		if err != nil {
			return nil, err
		}
	} else {
		statement, err = s.store.CreateStatement(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to create statement: %w", err)
		}
	}

	s.recordCreated(ctx, statement)
	s.logger.Info("Statement created",
		"statement_id", statement.ID,
		"user_id", statement.UserID,
		"type", statement.Type,
		"amount", statement.Amount,
	)

	return statement, nil
}

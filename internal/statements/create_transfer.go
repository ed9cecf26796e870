package statements

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/models"
)

const operationTransfer = "transfer"

// CreateTransferInput describes a transfer of Amount from SenderID to UserID.
type CreateTransferInput struct {
	SenderID    string
	UserID      string
	Amount      decimal.Decimal
	Description string
}

// CreateTransfer moves funds from the sender to the receiver.
//
// The receiver is resolved before the sender, so when neither exists the
// error is ErrUserNotFound. A single transfer statement is appended, owned by
// the receiver and carrying the sender's ID; both balances are derived from it.
func (s *Service) CreateTransfer(ctx context.Context, input CreateTransferInput) (*models.Statement, error) {
	if !models.ValidAmount(input.Amount) {
		return nil, s.reject(operationTransfer, ErrInvalidAmount)
	}
	if input.SenderID != "" && input.SenderID == input.UserID {
		return nil, s.reject(operationTransfer, ErrSelfTransfer)
	}

	exists, err := s.userExists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, s.reject(operationTransfer, ErrUserNotFound)
	}

	exists, err = s.userExists(ctx, input.SenderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, s.reject(operationTransfer, ErrSenderUserNotFound)
	}

	// Only the sender's balance can drop; the receiver needs no lock.
	statement, err := s.debit(ctx, operationTransfer, input.SenderID, models.CreateStatementInput{
		UserID:      input.UserID,
		SenderID:    input.SenderID,
		Type:        models.OperationTypeTransfer,
		Amount:      input.Amount,
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	s.recordCreated(ctx, statement)
	s.logger.Info("Transfer created",
		"statement_id", statement.ID,
		"sender_id", statement.SenderID,
		"user_id", statement.UserID,
		"amount", statement.Amount,
	)

	return statement, nil
}

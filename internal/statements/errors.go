package statements

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrSenderUserNotFound   = errors.New("sender user not found")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrStatementNotFound    = errors.New("statement not found")
	ErrInvalidAmount        = errors.New("amount must be positive with at most 4 decimal places")
	ErrInvalidOperationType = errors.New("operation type must be deposit or withdraw")
	ErrSelfTransfer         = errors.New("cannot transfer to the sending user")
)

// reason maps a rejection to the label used in the rejected-operations metric.
func reason(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrSenderUserNotFound):
		return "sender_not_found"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrStatementNotFound):
		return "statement_not_found"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidOperationType):
		return "invalid_type"
	case errors.Is(err, ErrSelfTransfer):
		return "self_transfer"
	default:
		return "internal"
	}
}

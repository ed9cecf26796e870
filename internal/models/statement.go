package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OperationType identifies what a statement records.
type OperationType string

const (
	OperationTypeDeposit  OperationType = "deposit"
	OperationTypeWithdraw OperationType = "withdraw"
	OperationTypeTransfer OperationType = "transfer"
)

// IsValid reports whether t is one of the known operation types.
func (t OperationType) IsValid() bool {
	switch t {
	case OperationTypeDeposit, OperationTypeWithdraw, OperationTypeTransfer:
		return true
	default:
		return false
	}
}

func (t OperationType) String() string {
	return string(t)
}

// AmountScale is the number of decimal places an amount may carry. It matches
// the NUMERIC(20, 4) column of the Postgres backend.
const AmountScale = 4

// ValidAmount reports whether amount is positive and fits AmountScale.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(AmountScale))
}

// Statement is a single immutable ledger entry.
//
// For deposits and withdrawals UserID is the actor and SenderID is empty.
// For transfers UserID is the receiver and SenderID is the paying user; the
// same statement is a credit for one and a debit for the other.
type Statement struct {
	// ID is the unique identifier for the statement (UUID format).
	ID string

	// UserID owns the statement. For transfers this is the receiver.
	UserID string

	// SenderID is set only on transfers.
	SenderID string

	Type OperationType

	// Amount is always positive; the sign is derived from the reader's role.
	Amount decimal.Decimal

	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTransfer reports whether t is OperationTypeTransfer.
func (t OperationType) IsTransfer() bool {
	return t == OperationTypeTransfer
}

// CreateStatementInput carries the fields a caller supplies for a new statement.
type CreateStatementInput struct {
	UserID      string
	SenderID    string
	Type        OperationType
	Amount      decimal.Decimal
	Description string
}

// NewStatement builds a statement from input with a fresh ID and timestamps.
func NewStatement(input CreateStatementInput) *Statement {
	now := time.Now().UTC()
	return &Statement{
		ID:          uuid.New().String(),
		UserID:      input.UserID,
		SenderID:    input.SenderID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Balance is a user's running balance.
// Statements is nil unless the caller asked for them.
type Balance struct {
	Amount     decimal.Decimal
	Statements []Statement
}

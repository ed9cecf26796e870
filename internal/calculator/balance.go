// Package calculator holds the pure balance arithmetic over ledger statements.
// Nothing here touches storage; every backend feeds its rows through the same fold.
package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/models"
)

// Involves reports whether userID is the owner or the sender of the statement.
func Involves(statement models.Statement, userID string) bool {
	return statement.UserID == userID || statement.SenderID == userID
}

// SelectUserStatements returns, in stored order, every statement where userID
// is the owner or the sender.
func SelectUserStatements(all []models.Statement, userID string) []models.Statement {
	selected := make([]models.Statement, 0)
	for _, s := range all {
		if Involves(s, userID) {
			selected = append(selected, s)
		}
	}
	return selected
}

// IsCredit reports whether the statement adds to userID's balance.
// Deposits credit their owner; a transfer credits the user it is addressed to.
// Everything else involving userID (withdrawals, transfers sent) is a debit.
func IsCredit(statement models.Statement, userID string) bool {
	switch statement.Type {
	case models.OperationTypeDeposit:
		return true
	case models.OperationTypeTransfer:
		return statement.UserID == userID
	default:
		return false
	}
}

// CalculateBalance folds statements into userID's balance.
//
// Algorithm:
//   - skip statements that do not involve userID
//   - credit: +amount (see IsCredit)
//   - debit:  -amount
//
// A transfer is matched on UserID for the credit and on SenderID for the
// debit, so one statement moves funds between two balances.
func CalculateBalance(statements []models.Statement, userID string) decimal.Decimal {
	balance := decimal.Zero
	for _, s := range statements {
		if !Involves(s, userID) {
			continue
		}
		if IsCredit(s, userID) {
			balance = balance.Add(s.Amount)
		} else {
			balance = balance.Sub(s.Amount)
		}
	}
	return balance
}

// Summarize selects userID's statements and folds them into a Balance.
// The statements are attached only when withStatements is true.
func Summarize(all []models.Statement, userID string, withStatements bool) *models.Balance {
	selected := SelectUserStatements(all, userID)
	balance := &models.Balance{Amount: CalculateBalance(selected, userID)}
	if withStatements {
		balance.Statements = selected
	}
	return balance
}

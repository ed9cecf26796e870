package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/calculator"
	"github.com/mmynk/finapi/internal/models"
)

const statementColumns = `id, user_id, sender_id, type, amount, description, created_at, updated_at`

// CreateStatement appends a new statement to the ledger.
func (s *SQLiteStore) CreateStatement(ctx context.Context, input models.CreateStatementInput) (*models.Statement, error) {
	statement := models.NewStatement(input)

	var senderID interface{} = nil
	if statement.SenderID != "" {
		senderID = statement.SenderID
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO statements (`+statementColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		statement.ID, statement.UserID, senderID, string(statement.Type),
		statement.Amount.String(), statement.Description,
		toUnix(statement.CreatedAt), toUnix(statement.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert statement: %w", err)
	}

	return statement, nil
}

// FindStatementOperation retrieves a statement by ID, scoped to its owner.
func (s *SQLiteStore) FindStatementOperation(ctx context.Context, statementID, userID string) (*models.Statement, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+statementColumns+` FROM statements WHERE id = ? AND user_id = ?`,
		statementID, userID,
	)

	statement, err := scanStatement(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}

	return statement, nil
}

// GetUserBalance folds every statement userID owns or sent, in insertion order.
func (s *SQLiteStore) GetUserBalance(ctx context.Context, userID string, withStatements bool) (*models.Balance, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+statementColumns+` FROM statements
		 WHERE user_id = ? OR sender_id = ?
		 ORDER BY seq`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}
	defer rows.Close()

	statements := make([]models.Statement, 0)
	for rows.Next() {
		statement, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement: %w", err)
		}
		statements = append(statements, *statement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate statements: %w", err)
	}

	return calculator.Summarize(statements, userID, withStatements), nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatement(row rowScanner) (*models.Statement, error) {
	statement := &models.Statement{}
	var (
		senderID             sql.NullString
		typ, amount          string
		createdAt, updatedAt int64
	)

	if err := row.Scan(&statement.ID, &statement.UserID, &senderID, &typ, &amount,
		&statement.Description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q on statement %s: %w", amount, statement.ID, err)
	}

	if senderID.Valid {
		statement.SenderID = senderID.String
	}
	statement.Type = models.OperationType(typ)
	statement.Amount = parsed
	statement.CreatedAt = fromUnix(createdAt)
	statement.UpdatedAt = fromUnix(updatedAt)

	return statement, nil
}

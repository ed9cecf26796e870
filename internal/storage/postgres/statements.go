package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/calculator"
	"github.com/mmynk/finapi/internal/models"
)

// amount is read back as text so decimal.Decimal parses it without float loss.
const statementColumns = `id, user_id, COALESCE(sender_id, ''), type, amount::text, description, created_at, updated_at`

// CreateStatement appends a new statement to the ledger.
func (s *PostgresStore) CreateStatement(ctx context.Context, input models.CreateStatementInput) (*models.Statement, error) {
	statement := models.NewStatement(input)

	var senderID *string
	if statement.SenderID != "" {
		senderID = &statement.SenderID
	}

	// return the amount as stored so the caller sees the column's scale
	var stored string
	err := s.db.QueryRow(ctx, `
		INSERT INTO statements (id, user_id, sender_id, type, amount, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)
		RETURNING amount::text`,
		statement.ID, statement.UserID, senderID, string(statement.Type),
		statement.Amount.String(), statement.Description,
		statement.CreatedAt, statement.UpdatedAt,
	).Scan(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to insert statement: %w", err)
	}

	amount, err := decimal.NewFromString(stored)
	if err != nil {
		return nil, fmt.Errorf("invalid stored amount %q: %w", stored, err)
	}
	statement.Amount = amount

	return statement, nil
}

// FindStatementOperation retrieves a statement by ID, scoped to its owner.
func (s *PostgresStore) FindStatementOperation(ctx context.Context, statementID, userID string) (*models.Statement, error) {
	statement, err := scanStatement(s.db.QueryRow(ctx,
		`SELECT `+statementColumns+` FROM statements WHERE id = $1 AND user_id = $2`,
		statementID, userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statement: %w", err)
	}
	return statement, nil
}

// GetUserBalance folds every statement userID owns or sent, in insertion order.
func (s *PostgresStore) GetUserBalance(ctx context.Context, userID string, withStatements bool) (*models.Balance, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+statementColumns+` FROM statements
		 WHERE user_id = $1 OR sender_id = $1
		 ORDER BY seq`,
		userID,
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

func scanStatement(row pgx.Row) (*models.Statement, error) {
	var (
		statement   models.Statement
		typ, amount string
	)
	if err := row.Scan(&statement.ID, &statement.UserID, &statement.SenderID, &typ, &amount,
		&statement.Description, &statement.CreatedAt, &statement.UpdatedAt); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q on statement %s: %w", amount, statement.ID, err)
	}
	statement.Type = models.OperationType(typ)
	statement.Amount = parsed
	statement.CreatedAt = statement.CreatedAt.UTC()
	statement.UpdatedAt = statement.UpdatedAt.UTC()

	return &statement, nil
}

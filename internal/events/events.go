// Package events publishes ledger events to downstream consumers.
package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/finapi/internal/models"
)

// StatementCreated is emitted after a statement has been appended to the ledger.
type StatementCreated struct {
	StatementID string          `json:"statement_id"`
	Type        string          `json:"type"`
	UserID      string          `json:"user_id"`
	SenderID    string          `json:"sender_id,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewStatementCreated builds the event for a stored statement.
func NewStatementCreated(statement *models.Statement) StatementCreated {
	return StatementCreated{
		StatementID: statement.ID,
		Type:        statement.Type.String(),
		UserID:      statement.UserID,
		SenderID:    statement.SenderID,
		Amount:      statement.Amount,
		Description: statement.Description,
		CreatedAt:   statement.CreatedAt,
	}
}

// Publisher delivers ledger events.
type Publisher interface {
	Publish(ctx context.Context, event StatementCreated) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, StatementCreated) error { return nil }

func (NopPublisher) Close() error { return nil }

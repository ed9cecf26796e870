// Package api defines the request and response messages of the finapi
// Connect services. Messages are JSON encoded; amounts travel as decimal
// strings so no precision is lost.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the public view of an account. It never carries the password hash.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Statement is one ledger entry.
type Statement struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	SenderID    string          `json:"sender_id,omitempty"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// UserService

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserResponse struct {
	User *User `json:"user"`
}

type AuthenticateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthenticateResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type ShowProfileRequest struct{}

type ShowProfileResponse struct {
	User *User `json:"user"`
}

// StatementService

type DepositRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type DepositResponse struct {
	Statement *Statement `json:"statement"`
}

type WithdrawRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type WithdrawResponse struct {
	Statement *Statement `json:"statement"`
}

// TransferRequest moves Amount from the caller to UserID.
type TransferRequest struct {
	UserID      string          `json:"user_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type TransferResponse struct {
	Statement *Statement `json:"statement"`
}

type GetBalanceRequest struct{}

type GetBalanceResponse struct {
	Balance    decimal.Decimal `json:"balance"`
	Statements []*Statement    `json:"statement"`
}

type GetStatementOperationRequest struct {
	StatementID string `json:"statement_id"`
}

type GetStatementOperationResponse struct {
	Statement *Statement `json:"statement"`
}

package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/finapi/internal/auth"
	"github.com/mmynk/finapi/internal/middleware"
	"github.com/mmynk/finapi/internal/models"
	"github.com/mmynk/finapi/internal/statements"
	"github.com/mmynk/finapi/pkg/api"
	"github.com/mmynk/finapi/pkg/api/apiconnect"
)

// Ensure StatementService implements the handler interface
var _ apiconnect.StatementServiceHandler = (*StatementService)(nil)

// StatementService implements the StatementService RPC interface on top of
// the ledger. Every RPC acts on behalf of the authenticated caller.
type StatementService struct {
	ledger *statements.Service
	logger *slog.Logger
}

// NewStatementService creates a new statement service.
func NewStatementService(ledger *statements.Service, logger *slog.Logger) *StatementService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatementService{
		ledger: ledger,
		logger: logger,
	}
}

// callerID returns the authenticated user ID set by the auth interceptor.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// Deposit credits the caller's account.
func (s *StatementService) Deposit(ctx context.Context, req *connect.Request[api.DepositRequest]) (*connect.Response[api.DepositResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	statement, err := s.ledger.CreateStatement(ctx, statements.CreateStatementInput{
		UserID:      userID,
		Type:        models.OperationTypeDeposit,
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DepositResponse{Statement: toAPIStatement(statement)}), nil
}

// Withdraw debits the caller's account if the balance covers the amount.
func (s *StatementService) Withdraw(ctx context.Context, req *connect.Request[api.WithdrawRequest]) (*connect.Response[api.WithdrawResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	statement, err := s.ledger.CreateStatement(ctx, statements.CreateStatementInput{
		UserID:      userID,
		Type:        models.OperationTypeWithdraw,
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.WithdrawResponse{Statement: toAPIStatement(statement)}), nil
}

// Transfer moves funds from the caller to req.Msg.UserID.
func (s *StatementService) Transfer(ctx context.Context, req *connect.Request[api.TransferRequest]) (*connect.Response[api.TransferResponse], error) {
	senderID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	statement, err := s.ledger.CreateTransfer(ctx, statements.CreateTransferInput{
		SenderID:    senderID,
		UserID:      req.Msg.UserID,
		Amount:      req.Msg.Amount,
		Description: req.Msg.Description,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.TransferResponse{Statement: toAPIStatement(statement)}), nil
}

// GetBalance returns the caller's balance and the statements behind it.
func (s *StatementService) GetBalance(ctx context.Context, req *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		s.logger.Warn("GetBalance failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetBalanceResponse{
		Balance:    balance.Amount,
		Statements: toAPIStatements(balance.Statements),
	}), nil
}

// GetStatementOperation returns one of the caller's statements.
func (s *StatementService) GetStatementOperation(ctx context.Context, req *connect.Request[api.GetStatementOperationRequest]) (*connect.Response[api.GetStatementOperationResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	statement, err := s.ledger.GetStatementOperation(ctx, userID, req.Msg.StatementID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetStatementOperationResponse{Statement: toAPIStatement(statement)}), nil
}

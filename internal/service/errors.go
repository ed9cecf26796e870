package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/finapi/internal/auth"
	"github.com/mmynk/finapi/internal/statements"
)

// toConnectError maps domain errors to Connect codes. Unknown errors become
// CodeInternal.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, statements.ErrUserNotFound),
		errors.Is(err, statements.ErrSenderUserNotFound),
		errors.Is(err, statements.ErrStatementNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, statements.ErrInsufficientFunds):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, statements.ErrInvalidAmount),
		errors.Is(err, statements.ErrInvalidOperationType),
		errors.Is(err, statements.ErrSelfTransfer),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrMissingFields):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/finapi/pkg/api"
)

// StatementServiceName is the fully-qualified name of the StatementService service.
const StatementServiceName = "finapi.v1.StatementService"

// Procedure names of the StatementService RPCs.
const (
	StatementServiceDepositProcedure               = "/finapi.v1.StatementService/Deposit"
	StatementServiceWithdrawProcedure              = "/finapi.v1.StatementService/Withdraw"
	StatementServiceTransferProcedure              = "/finapi.v1.StatementService/Transfer"
	StatementServiceGetBalanceProcedure            = "/finapi.v1.StatementService/GetBalance"
	StatementServiceGetStatementOperationProcedure = "/finapi.v1.StatementService/GetStatementOperation"
)

// StatementServiceClient is a client for the finapi.v1.StatementService service.
type StatementServiceClient interface {
	Deposit(context.Context, *connect.Request[api.DepositRequest]) (*connect.Response[api.DepositResponse], error)
	Withdraw(context.Context, *connect.Request[api.WithdrawRequest]) (*connect.Response[api.WithdrawResponse], error)
	Transfer(context.Context, *connect.Request[api.TransferRequest]) (*connect.Response[api.TransferResponse], error)
	GetBalance(context.Context, *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error)
	GetStatementOperation(context.Context, *connect.Request[api.GetStatementOperationRequest]) (*connect.Response[api.GetStatementOperationResponse], error)
}

// NewStatementServiceClient constructs a client for the
// finapi.v1.StatementService service.
func NewStatementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) StatementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientCodecs(opts)
	return &statementServiceClient{
		deposit: connect.NewClient[api.DepositRequest, api.DepositResponse](
			httpClient, baseURL+StatementServiceDepositProcedure, opts...,
		),
		withdraw: connect.NewClient[api.WithdrawRequest, api.WithdrawResponse](
			httpClient, baseURL+StatementServiceWithdrawProcedure, opts...,
		),
		transfer: connect.NewClient[api.TransferRequest, api.TransferResponse](
			httpClient, baseURL+StatementServiceTransferProcedure, opts...,
		),
		getBalance: connect.NewClient[api.GetBalanceRequest, api.GetBalanceResponse](
			httpClient, baseURL+StatementServiceGetBalanceProcedure, opts...,
		),
		getStatementOperation: connect.NewClient[api.GetStatementOperationRequest, api.GetStatementOperationResponse](
			httpClient, baseURL+StatementServiceGetStatementOperationProcedure, opts...,
		),
	}
}

type statementServiceClient struct {
	deposit               *connect.Client[api.DepositRequest, api.DepositResponse]
	withdraw              *connect.Client[api.WithdrawRequest, api.WithdrawResponse]
	transfer              *connect.Client[api.TransferRequest, api.TransferResponse]
	getBalance            *connect.Client[api.GetBalanceRequest, api.GetBalanceResponse]
	getStatementOperation *connect.Client[api.GetStatementOperationRequest, api.GetStatementOperationResponse]
}

func (c *statementServiceClient) Deposit(ctx context.Context, req *connect.Request[api.DepositRequest]) (*connect.Response[api.DepositResponse], error) {
	return c.deposit.CallUnary(ctx, req)
}

func (c *statementServiceClient) Withdraw(ctx context.Context, req *connect.Request[api.WithdrawRequest]) (*connect.Response[api.WithdrawResponse], error) {
	return c.withdraw.CallUnary(ctx, req)
}

func (c *statementServiceClient) Transfer(ctx context.Context, req *connect.Request[api.TransferRequest]) (*connect.Response[api.TransferResponse], error) {
	return c.transfer.CallUnary(ctx, req)
}

func (c *statementServiceClient) GetBalance(ctx context.Context, req *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error) {
	return c.getBalance.CallUnary(ctx, req)
}

func (c *statementServiceClient) GetStatementOperation(ctx context.Context, req *connect.Request[api.GetStatementOperationRequest]) (*connect.Response[api.GetStatementOperationResponse], error) {
	return c.getStatementOperation.CallUnary(ctx, req)
}

// StatementServiceHandler is implemented by the server side of
// finapi.v1.StatementService.
type StatementServiceHandler interface {
	Deposit(context.Context, *connect.Request[api.DepositRequest]) (*connect.Response[api.DepositResponse], error)
	Withdraw(context.Context, *connect.Request[api.WithdrawRequest]) (*connect.Response[api.WithdrawResponse], error)
	Transfer(context.Context, *connect.Request[api.TransferRequest]) (*connect.Response[api.TransferResponse], error)
	GetBalance(context.Context, *connect.Request[api.GetBalanceRequest]) (*connect.Response[api.GetBalanceResponse], error)
	GetStatementOperation(context.Context, *connect.Request[api.GetStatementOperationRequest]) (*connect.Response[api.GetStatementOperationResponse], error)
}

// NewStatementServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewStatementServiceHandler(svc StatementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerCodecs(opts)
	depositHandler := connect.NewUnaryHandler(StatementServiceDepositProcedure, svc.Deposit, opts...)
	withdrawHandler := connect.NewUnaryHandler(StatementServiceWithdrawProcedure, svc.Withdraw, opts...)
	transferHandler := connect.NewUnaryHandler(StatementServiceTransferProcedure, svc.Transfer, opts...)
	getBalanceHandler := connect.NewUnaryHandler(StatementServiceGetBalanceProcedure, svc.GetBalance, opts...)
	getStatementOperationHandler := connect.NewUnaryHandler(StatementServiceGetStatementOperationProcedure, svc.GetStatementOperation, opts...)
	return "/" + StatementServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case StatementServiceDepositProcedure:
			depositHandler.ServeHTTP(w, r)
		case StatementServiceWithdrawProcedure:
			withdrawHandler.ServeHTTP(w, r)
		case StatementServiceTransferProcedure:
			transferHandler.ServeHTTP(w, r)
		case StatementServiceGetBalanceProcedure:
			getBalanceHandler.ServeHTTP(w, r)
		case StatementServiceGetStatementOperationProcedure:
			getStatementOperationHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

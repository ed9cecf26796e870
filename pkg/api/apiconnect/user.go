package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/finapi/pkg/api"
)

// UserServiceName is the fully-qualified name of the UserService service.
const UserServiceName = "finapi.v1.UserService"

// Procedure names of the UserService RPCs.
const (
	UserServiceCreateUserProcedure   = "/finapi.v1.UserService/CreateUser"
	UserServiceAuthenticateProcedure = "/finapi.v1.UserService/Authenticate"
	UserServiceShowProfileProcedure  = "/finapi.v1.UserService/ShowProfile"
)

// UserServiceClient is a client for the finapi.v1.UserService service.
type UserServiceClient interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	Authenticate(context.Context, *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error)
	ShowProfile(context.Context, *connect.Request[api.ShowProfileRequest]) (*connect.Response[api.ShowProfileResponse], error)
}

// NewUserServiceClient constructs a client for the finapi.v1.UserService
// service. baseURL is the scheme and host of the server, e.g. http://localhost:8080.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientCodecs(opts)
	return &userServiceClient{
		createUser: connect.NewClient[api.CreateUserRequest, api.CreateUserResponse](
			httpClient, baseURL+UserServiceCreateUserProcedure, opts...,
		),
		authenticate: connect.NewClient[api.AuthenticateRequest, api.AuthenticateResponse](
			httpClient, baseURL+UserServiceAuthenticateProcedure, opts...,
		),
		showProfile: connect.NewClient[api.ShowProfileRequest, api.ShowProfileResponse](
			httpClient, baseURL+UserServiceShowProfileProcedure, opts...,
		),
	}
}

type userServiceClient struct {
	createUser   *connect.Client[api.CreateUserRequest, api.CreateUserResponse]
	authenticate *connect.Client[api.AuthenticateRequest, api.AuthenticateResponse]
	showProfile  *connect.Client[api.ShowProfileRequest, api.ShowProfileResponse]
}

func (c *userServiceClient) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	return c.createUser.CallUnary(ctx, req)
}

func (c *userServiceClient) Authenticate(ctx context.Context, req *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error) {
	return c.authenticate.CallUnary(ctx, req)
}

func (c *userServiceClient) ShowProfile(ctx context.Context, req *connect.Request[api.ShowProfileRequest]) (*connect.Response[api.ShowProfileResponse], error) {
	return c.showProfile.CallUnary(ctx, req)
}

// UserServiceHandler is implemented by the server side of finapi.v1.UserService.
type UserServiceHandler interface {
	CreateUser(context.Context, *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error)
	Authenticate(context.Context, *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error)
	ShowProfile(context.Context, *connect.Request[api.ShowProfileRequest]) (*connect.Response[api.ShowProfileResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service
// implementation. It returns the path on which to mount the handler and the
// handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerCodecs(opts)
	createUserHandler := connect.NewUnaryHandler(UserServiceCreateUserProcedure, svc.CreateUser, opts...)
	authenticateHandler := connect.NewUnaryHandler(UserServiceAuthenticateProcedure, svc.Authenticate, opts...)
	showProfileHandler := connect.NewUnaryHandler(UserServiceShowProfileProcedure, svc.ShowProfile, opts...)
	return "/" + UserServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceCreateUserProcedure:
			createUserHandler.ServeHTTP(w, r)
		case UserServiceAuthenticateProcedure:
			authenticateHandler.ServeHTTP(w, r)
		case UserServiceShowProfileProcedure:
			showProfileHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

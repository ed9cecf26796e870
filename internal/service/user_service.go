package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/finapi/internal/auth"
	"github.com/mmynk/finapi/internal/middleware"
	"github.com/mmynk/finapi/internal/statements"
	"github.com/mmynk/finapi/pkg/api"
	"github.com/mmynk/finapi/pkg/api/apiconnect"
)

// Ensure UserService implements the handler interface
var _ apiconnect.UserServiceHandler = (*UserService)(nil)

// UserService implements the UserService RPC interface: account creation,
// sessions and the caller's profile.
type UserService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	users         statements.UserLookup
	logger        *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, users statements.UserLookup, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		users:         users,
		logger:        logger,
	}
}

// CreateUser registers a new account.
func (s *UserService) CreateUser(ctx context.Context, req *connect.Request[api.CreateUserRequest]) (*connect.Response[api.CreateUserResponse], error) {
	user, err := s.authenticator.Register(ctx, req.Msg.Name, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return connect.NewResponse(&api.CreateUserResponse{User: toAPIUser(user)}), nil
}

// Authenticate checks credentials and opens a session by issuing a token.
func (s *UserService) Authenticate(ctx context.Context, req *connect.Request[api.AuthenticateRequest]) (*connect.Response[api.AuthenticateResponse], error) {
	if req.Msg.Email == "" || req.Msg.Password == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	user, err := s.authenticator.Authenticate(ctx, req.Msg.Email, req.Msg.Password)
	if err != nil {
		s.logger.Warn("Authentication failed", "email", req.Msg.Email, "error", err)
		return nil, toConnectError(err)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("User authenticated", "user_id", user.ID)
	return connect.NewResponse(&api.AuthenticateResponse{
		User:  toAPIUser(user),
		Token: token,
	}), nil
}

// ShowProfile returns the authenticated caller's account.
func (s *UserService) ShowProfile(ctx context.Context, req *connect.Request[api.ShowProfileRequest]) (*connect.Response[api.ShowProfileResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("ShowProfile failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}
	if user == nil {
		return nil, toConnectError(statements.ErrUserNotFound)
	}

	return connect.NewResponse(&api.ShowProfileResponse{User: toAPIUser(user)}), nil
}

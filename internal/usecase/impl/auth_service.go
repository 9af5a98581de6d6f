// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "hangar/internal/delivery/context"
	"hangar/internal/domain/entity"
	domainerrors "hangar/internal/domain/errors"
	"hangar/internal/domain/repository"
	"hangar/internal/domain/service"
	"hangar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the presented credentials and issues a signed token.
// An unknown username and a wrong password take the same failure path, so a
// caller cannot probe which usernames exist.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.Issue(user.ID, user.Username)
	if err != nil {
		srv.log(ctx).Error("Token issuance failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.Uint64("userID", uint64(user.ID)))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresIn: int64(srv.tokenService.TTL().Seconds()),
		User:      user.Summary(),
	}, nil
}

// Resolve validates a bearer token and returns the user ID from its subject.
func (srv *authService) Resolve(ctx context.Context, token string) (uint, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return 0, errors.Wrap(domainerrors.ErrUnauthorized, "token validation failed")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		srv.log(ctx).Warn("Token carries a malformed subject", slog.String("subject", claims.Subject))

		return 0, errors.Wrap(domainerrors.ErrUnauthorized, "malformed token subject")
	}

	return uint(userID), nil
}

// CurrentUser returns the public profile of an authenticated user.
func (srv *authService) CurrentUser(ctx context.Context, userID uint) (*entity.UserSummary, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The token named a user that no longer exists.
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return user.Summary(), nil
}

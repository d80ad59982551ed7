// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "horus/internal/delivery/context"
	domainerrors "horus/internal/domain/errors"
	"horus/internal/domain/repository"
	"horus/internal/domain/service"
	"horus/internal/usecase"

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

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the credentials and issues a session token bound to
// the user's ID.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Authentication failed", slog.String("email", input.Email), slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.HasPassword() {
		srv.log(ctx).Warn("Authentication failed", slog.Any("userID", user.ID), slog.String("reason", "no password set"))

		return nil, domainerrors.ErrNoPasswordSet.WrapMessage("login failed")
	}

	// bcrypt comparison is constant-time with respect to the password.
	if !srv.hasher.Check(input.Password, *user.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.Any("userID", user.ID), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Sign(service.Claims{Subject: user.ID}, usecase.SessionTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign session token")
	}

	srv.log(ctx).Debug("User authenticated", slog.Any("userID", user.ID))

	return &usecase.AuthenticateOutput{Token: token}, nil
}

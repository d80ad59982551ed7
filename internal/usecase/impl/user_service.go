package impl

import (
	"context"
	"log/slog"

	"horus/config"
	deliverycontext "horus/internal/delivery/context"
	"horus/internal/domain/entity"
	domainerrors "horus/internal/domain/errors"
	"horus/internal/domain/repository"
	"horus/internal/domain/service"
	"horus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	hasher     service.PasswordHasher
	bcryptCost int
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	bcryptCost := config.DefaultBcryptCost
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.BcryptCost != 0 {
		bcryptCost = params.Config.Auth.BcryptCost
	}

	return &userService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		hasher:     params.Hasher,
		bcryptCost: bcryptCost,
		logger:     params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new account whose initial password is its document.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var created *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureUnused(ctx, userRepo.FindByEmail, input.Email, domainerrors.ErrDuplicateEmail); err != nil {
			return err
		}
		if err := ensureUnused(ctx, userRepo.FindByDocument, input.Document, domainerrors.ErrDuplicateDocument); err != nil {
			return err
		}

		user, err := srv.buildUser(input)
		if err != nil {
			return err
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		created = user

		return nil
	})
	if err != nil {
		var violation *repository.ConstraintViolationError
		if errors.As(err, &violation) {
			srv.log(ctx).Warn("Registration lost a uniqueness race", slog.String("email", input.Email), slog.String("field", string(violation.Field)))

			return srv.duplicateError(ctx, violation.Field, input)
		}

		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", created.ID))

	return nil
}

// ensureUnused returns dup when find locates an existing user for value.
func ensureUnused(
	ctx context.Context,
	find func(context.Context, string) (*entity.User, error),
	value string,
	dup *domainerrors.BaseError,
) error {
	_, err := find(ctx, value)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to check uniqueness")
	default:
		return dup.WrapMessage("registration conflict")
	}
}

func (srv *userService) buildUser(input *usecase.CreateUserInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Document, srv.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash initial password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}

	return &entity.User{
		ID:           id,
		FirstName:    input.FirstName,
		Email:        input.Email,
		Document:     input.Document,
		PasswordHash: &hash,
	}, nil
}

// duplicateError resolves a constraint violation reported by the store into
// the client-facing error. When the store does not name the constraint, the
// conflicting row is looked up, email first.
func (srv *userService) duplicateError(ctx context.Context, field repository.UniqueField, input *usecase.CreateUserInput) error {
	if field == repository.FieldUnknown {
		field = repository.FieldEmail
		if _, err := srv.userRepo.FindByEmail(ctx, input.Email); errors.Is(err, repository.ErrUserNotFound) {
			if _, err := srv.userRepo.FindByDocument(ctx, input.Document); err == nil {
				field = repository.FieldDocument
			}
		}
	}

	if field == repository.FieldDocument {
		return domainerrors.ErrDuplicateDocument.WrapMessage("registration conflict")
	}

	return domainerrors.ErrDuplicateEmail.WrapMessage("registration conflict")
}

// GetProfile loads the account behind an authenticated session.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

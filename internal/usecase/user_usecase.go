package usecase

import (
	"context"

	"horus/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to register a new user.
// The document doubles as the initial password.
type CreateUserInput struct {
	FirstName string `json:"first_name" validate:"required"`
	Email     string `json:"email"      validate:"required,email"`
	Document  string `json:"document"   validate:"required,min=11"`
}

// UserUsecase defines the user-related business operations consumed by the
// delivery layer.
type UserUsecase interface {
	// CreateUser registers a new account. Email uniqueness is checked before
	// document uniqueness and the first conflict is reported.
	CreateUser(ctx context.Context, input *CreateUserInput) error

	// GetProfile loads the account behind an authenticated session.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
